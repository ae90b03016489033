package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Submission is one saved simple-form entry.
type Submission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmissionSummary is the lightweight listing shape.
type SubmissionSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// submissionFile is the on-disk layout: all records plus the id counter.
type submissionFile struct {
	NextID  int          `json:"next_id"`
	Records []Submission `json:"records"`
}

// SubmissionStore keeps all submissions in one JSON file under the data
// directory. Ids increment monotonically and are never reused.
type SubmissionStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewSubmissionStore creates a submission store rooted at the data directory.
func NewSubmissionStore(dataDir string, logger *slog.Logger) (*SubmissionStore, error) {
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}
	return &SubmissionStore{
		path:   filepath.Join(dataDir, "submissions.json"),
		logger: logger,
	}, nil
}

// Create appends a new submission and returns it with its assigned id.
func (s *SubmissionStore) Create(name string, age int, email string) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return Submission{}, err
	}

	sub := Submission{
		ID:        file.NextID,
		Name:      name,
		Age:       age,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	file.NextID++
	file.Records = append(file.Records, sub)

	if err := s.write(file); err != nil {
		return Submission{}, err
	}
	s.logger.Info("submission created", "id", sub.ID, "name", sub.Name)
	return sub, nil
}

// Get returns one submission by id, or ErrNotFound.
func (s *SubmissionStore) Get(id int) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return Submission{}, err
	}
	for _, sub := range file.Records {
		if sub.ID == id {
			return sub, nil
		}
	}
	return Submission{}, ErrNotFound
}

// List returns id and name for every submission, oldest first.
func (s *SubmissionStore) List() ([]SubmissionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionSummary, 0, len(file.Records))
	for _, sub := range file.Records {
		out = append(out, SubmissionSummary{ID: sub.ID, Name: sub.Name})
	}
	return out, nil
}

func (s *SubmissionStore) read() (submissionFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return submissionFile{NextID: 1}, nil
	}
	if err != nil {
		return submissionFile{}, fmt.Errorf("cannot read submissions: %w", err)
	}

	var file submissionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return submissionFile{}, fmt.Errorf("corrupt submissions file: %w", err)
	}
	if file.NextID < 1 {
		file.NextID = 1
	}
	return file, nil
}

func (s *SubmissionStore) write(file submissionFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode submissions: %w", err)
	}
	return WriteFileAtomic(s.path, data)
}
