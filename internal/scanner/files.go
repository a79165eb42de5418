package scanner

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const fileCloseErrorMsg = "Error closing file %s: %v\n"

type FileScanner struct {
	rootPath    string
	excludeDirs []string
	gitIgnores  []string
}

type FileInfo struct {
	Path         string
	RelativePath string
	Size         int64
	LineCount    int
}

// NewFileScanner prepares a scanner rooted at rootPath. The root may be a
// single file or a directory; it must exist.
func NewFileScanner(rootPath string, excludeDirs []string) (*FileScanner, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan root %s: %w", absPath, err)
	}

	scanner := &FileScanner{
		rootPath:    absPath,
		excludeDirs: excludeDirs,
	}

	if info.IsDir() {
		if err := scanner.loadGitIgnores(); err != nil {
			return nil, fmt.Errorf("failed to load .gitignore: %w", err)
		}
	}

	return scanner, nil
}

func (s *FileScanner) loadGitIgnores() error {
	gitIgnorePath := filepath.Join(s.rootPath, ".gitignore")
	file, err := os.Open(gitIgnorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			fmt.Printf("Error closing .gitignore file: %v\n", err)
		}
	}(file)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			s.gitIgnores = append(s.gitIgnores, line)
		}
	}

	return scanner.Err()
}

// GoFiles returns every .go file under the root in lexical path order, so
// repeated scans of unchanged input visit files identically.
func (s *FileScanner) GoFiles() ([]FileInfo, error) {
	info, err := os.Stat(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan root %s: %w", s.rootPath, err)
	}

	if !info.IsDir() {
		return []FileInfo{{
			Path:         s.rootPath,
			RelativePath: filepath.Base(s.rootPath),
			Size:         info.Size(),
			LineCount:    s.countLinesQuietly(s.rootPath),
		}}, nil
	}

	var files []FileInfo

	err = filepath.WalkDir(s.rootPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if s.isExcludedDir(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".go" {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		fileInfo, err := s.createFileInfo(path, info)
		if err != nil {
			return err
		}

		if fileInfo != nil {
			files = append(files, *fileInfo)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})

	return files, nil
}

func (s *FileScanner) isExcludedDir(name string) bool {
	for _, dir := range s.excludeDirs {
		if name == dir {
			return true
		}
	}
	return false
}

func (s *FileScanner) createFileInfo(path string, info os.FileInfo) (*FileInfo, error) {
	relPath, err := filepath.Rel(s.rootPath, path)
	if err != nil {
		return nil, err
	}

	if s.shouldIgnore(relPath) {
		return nil, nil
	}

	fileInfo := FileInfo{
		Path:         path,
		RelativePath: relPath,
		Size:         info.Size(),
	}

	lineCount, err := s.countLines(path)
	if err == nil {
		fileInfo.LineCount = lineCount
	}

	return &fileInfo, nil
}

func (s *FileScanner) shouldIgnore(path string) bool {
	for _, pattern := range s.gitIgnores {
		if strings.HasSuffix(pattern, "/") {
			dirPattern := strings.TrimSuffix(pattern, "/")
			if matched, _ := filepath.Match(dirPattern, path); matched {
				return true
			}
			if matched, _ := filepath.Match(dirPattern, filepath.Base(path)); matched {
				return true
			}
		}

		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
	}
	return false
}

func (s *FileScanner) countLinesQuietly(path string) int {
	count, err := s.countLines(path)
	if err != nil {
		return 0
	}
	return count
}

func (s *FileScanner) countLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			fmt.Printf(fileCloseErrorMsg, path, err)
		}
	}(file)

	scanner := bufio.NewScanner(file)
	count := 0
	for scanner.Scan() {
		count++
	}

	return count, scanner.Err()
}
