package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pickem-pool-go/database"
	"pickem-pool-go/logging"

	"go.mongodb.org/mongo-driver/bson"
)

// BackupService snapshots the pool collections to JSON files on disk.
// The old flat-file system kept ad hoc copies of spreads and totals
// before overwriting them; this replaces that with a dated snapshot of
// every collection.
type BackupService struct {
	db          *database.MongoDB
	backupDir   string
	logger      *logging.Logger
	collections []string
}

// BackupConfig holds backup service configuration
type BackupConfig struct {
	BackupDir   string
	Collections []string
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.MongoDB, config BackupConfig) *BackupService {
	collections := config.Collections
	if len(collections) == 0 {
		collections = []string{"spreads", "results", "picks", "standings", "players"}
	}

	return &BackupService{
		db:          db,
		backupDir:   config.BackupDir,
		logger:      logging.WithPrefix("BackupService"),
		collections: collections,
	}
}

// CreateBackup writes a dated snapshot of every configured collection
func (bs *BackupService) CreateBackup() error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	backupPath := filepath.Join(bs.backupDir, fmt.Sprintf("backup_%s", timestamp))

	bs.logger.Infof("Starting backup to %s", backupPath)

	if err := os.MkdirAll(backupPath, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	for _, collectionName := range bs.collections {
		if err := bs.backupCollection(collectionName, backupPath); err != nil {
			bs.logger.Errorf("Failed to backup collection %s: %v", collectionName, err)
			return fmt.Errorf("failed to backup collection %s: %w", collectionName, err)
		}
	}

	if err := bs.createBackupMetadata(backupPath, timestamp); err != nil {
		bs.logger.Warnf("Failed to create backup metadata: %v", err)
	}

	bs.logger.Infof("Backup completed successfully at %s", backupPath)
	return nil
}

// backupCollection writes one collection's documents as JSON lines
func (bs *BackupService) backupCollection(collectionName string, backupPath string) error {
	collection := bs.db.GetCollection(collectionName)

	ctx, cancel := database.WithLongTimeout()
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	outputFile := filepath.Join(backupPath, fmt.Sprintf("%s.json", collectionName))
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	documentCount := 0

	for cursor.Next(ctx) {
		var document bson.M
		if err := cursor.Decode(&document); err != nil {
			return fmt.Errorf("failed to decode document: %w", err)
		}

		if err := encoder.Encode(document); err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		documentCount++
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	bs.logger.Infof("Backed up %d documents from collection %s", documentCount, collectionName)
	return nil
}

func (bs *BackupService) createBackupMetadata(backupPath string, timestamp string) error {
	metadata := map[string]interface{}{
		"timestamp":   timestamp,
		"created_at":  time.Now().UTC().Format(time.RFC3339),
		"collections": bs.collections,
		"version":     "1.0",
	}

	metadataFile := filepath.Join(backupPath, "metadata.json")
	file, err := os.Create(metadataFile)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(metadata)
}

// CleanupOldBackups removes backup directories older than the retention window
func (bs *BackupService) CleanupOldBackups(retentionDays int) error {
	if retentionDays <= 0 {
		bs.logger.Info("Backup cleanup disabled (retention days <= 0)")
		return nil
	}

	cutoffTime := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(bs.backupDir)
	if err != nil {
		return fmt.Errorf("failed to read backup directory: %w", err)
	}

	deletedCount := 0
	for _, entry := range entries {
		if !entry.IsDir() || !isBackupDir(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			bs.logger.Warnf("Failed to get info for %s: %v", entry.Name(), err)
			continue
		}

		if info.ModTime().Before(cutoffTime) {
			backupPath := filepath.Join(bs.backupDir, entry.Name())
			if err := os.RemoveAll(backupPath); err != nil {
				bs.logger.Warnf("Failed to remove old backup %s: %v", backupPath, err)
			} else {
				bs.logger.Infof("Removed old backup: %s", entry.Name())
				deletedCount++
			}
		}
	}

	bs.logger.Infof("Cleanup completed. Removed %d old backups", deletedCount)
	return nil
}

func isBackupDir(name string) bool {
	// Matches backup_YYYY-MM-DD_HH-MM-SS
	return len(name) > 7 && name[:7] == "backup_"
}

// StartScheduler starts the nightly backup scheduler
func (bs *BackupService) StartScheduler(ctx context.Context, backupTime string, retentionDays int) {
	bs.logger.Infof("Starting backup scheduler. Daily backup at %s, retention: %d days", backupTime, retentionDays)

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		var lastBackupDate string

		for {
			select {
			case <-ctx.Done():
				bs.logger.Info("Backup scheduler stopped")
				return
			case <-ticker.C:
				now := time.Now()
				currentDate := now.Format("2006-01-02")
				currentTime := now.Format("15:04")

				if currentTime >= backupTime && lastBackupDate != currentDate {
					bs.logger.Info("Starting scheduled backup")

					if err := bs.CreateBackup(); err != nil {
						bs.logger.Errorf("Scheduled backup failed: %v", err)
					} else {
						lastBackupDate = currentDate

						if err := bs.CleanupOldBackups(retentionDays); err != nil {
							bs.logger.Errorf("Backup cleanup failed: %v", err)
						}
					}
				}
			}
		}
	}()
}
