package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"wonbyte/internal/database"
	"wonbyte/internal/repository"
)

// BackupData is the portable snapshot format: accounts plus every ledger
// row, dialect-independent so a sqlite export restores into postgres.
type BackupData struct {
	Version    string        `json:"version"`
	ExportedAt time.Time     `json:"exportedAt"`
	Users      []UserBackup  `json:"users"`
	State      []StateBackup `json:"state"`
}

// UserBackup carries the password hash, which the API models deliberately
// never serialize.
type UserBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"passwordHash"`
	Name          string    `json:"name"`
	GuardianEmail string    `json:"guardianEmail,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StateBackup is one ledger row. Value stays raw JSON so the snapshot
// round-trips byte-for-byte.
type StateBackup struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// BackupService exports and restores the full database as JSON.
type BackupService struct {
	db    *database.DB
	users *repository.UserRepository
	state *repository.StateRepository
}

func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{
		db:    db,
		users: repository.NewUserRepository(db),
		state: repository.NewStateRepository(db),
	}
}

// Export writes a complete backup to outputPath.
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return s.ExportToWriter(file)
}

// ExportToWriter writes a complete backup to w.
func (s *BackupService) ExportToWriter(w io.Writer) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Users:      []UserBackup{},
		State:      []StateBackup{},
	}

	users, err := s.users.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	for _, u := range users {
		backup.Users = append(backup.Users, UserBackup{
			ID:            u.ID,
			Email:         u.Email,
			PasswordHash:  u.PasswordHash,
			Name:          u.Name,
			GuardianEmail: u.GuardianEmail,
			CreatedAt:     u.CreatedAt,
			UpdatedAt:     u.UpdatedAt,
		})
	}

	rows, err := s.state.All()
	if err != nil {
		return fmt.Errorf("failed to export learning state: %w", err)
	}
	for _, row := range rows {
		backup.State = append(backup.State, StateBackup{
			Key:   row.Key,
			Value: json.RawMessage(row.Value),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported: %d users, %d state rows", len(backup.Users), len(backup.State))
	return nil
}

// Import restores a backup file. Existing rows with the same keys are
// overwritten; everything happens in one transaction.
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a backup from r.
func (s *BackupService) ImportFromReader(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, u := range backup.Users {
		_, err := tx.Exec(`
			INSERT INTO users (id, email, password_hash, name, guardian_email, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, u.ID, u.Email, u.PasswordHash, u.Name, nullIfEmpty(u.GuardianEmail), u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.ID, err)
		}
	}

	for _, row := range backup.State {
		if _, err := tx.Exec(s.db.Dialect.UpsertState(), row.Key, []byte(row.Value)); err != nil {
			return fmt.Errorf("failed to import state row %q: %w", row.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Printf("Imported: %d users, %d state rows", len(backup.Users), len(backup.State))
	return nil
}

// Clear deletes every row so an import starts from an empty database.
func (s *BackupService) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM learning_state`); err != nil {
		return fmt.Errorf("failed to clear learning state: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
