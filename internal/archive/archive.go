package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveLists moves the saved lists directory to an archive with timestamp,
// so the next study cycle starts from a clean slate
func ArchiveLists(listsDir string) error {
	// Check if lists directory exists
	if _, err := os.Stat(listsDir); os.IsNotExist(err) {
		return fmt.Errorf("lists directory does not exist: %s", listsDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(listsDir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("lists-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("lists-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename lists directory to archive
	if err := os.Rename(listsDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive lists directory: %w", err)
	}

	fmt.Printf("Lists directory archived to: %s\n", archivePath)
	return nil
}
