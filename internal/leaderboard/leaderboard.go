// internal/leaderboard/leaderboard.go
package leaderboard

import (
	"balloon-popper/internal/config"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// Entry — одна запись таблицы рекордов.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store хранит лучшие результаты. Список всегда отсортирован по убыванию
// очков и обрезан до config.LeaderboardSize.
type Store interface {
	Load() ([]Entry, error)
	Save(name string, score int) error
}

// Insert добавляет запись в список и возвращает новый отсортированный и обрезанный список.
// При равенстве очков более старая запись остаётся выше.
func Insert(list []Entry, name string, score int) []Entry {
	out := append(slices.Clone(list), Entry{Name: CleanName(name), Score: score})
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(out) > config.LeaderboardSize {
		out = out[:config.LeaderboardSize]
	}
	return out
}

// CleanName обрезает пробелы и длину имени; пустое имя заменяется на "Anonymous".
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return config.DefaultName
	}
	if utf8.RuneCountInString(name) > config.MaxNameLength {
		name = string([]rune(name)[:config.MaxNameLength])
	}
	return name
}

// HighScore возвращает лучший результат или 0 для пустого списка.
func HighScore(list []Entry) int {
	if len(list) == 0 {
		return 0
	}
	return list[0].Score
}

// FileStore хранит таблицу в JSON-файле с именем ключа внутри каталога.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, config.LeaderboardKey+".json")}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load читает таблицу. Отсутствующий файл даёт пустой список без ошибки.
func (s *FileStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	var list []Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard %s: %w", s.path, err)
	}
	slices.SortStableFunc(list, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(list) > config.LeaderboardSize {
		list = list[:config.LeaderboardSize]
	}
	return list, nil
}

// Save добавляет результат. Повреждённый файл перезаписывается новым списком.
func (s *FileStore) Save(name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		list = nil
	}
	list = Insert(list, name, score)

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create leaderboard dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace leaderboard: %w", err)
	}
	return nil
}

// MemoryStore — таблица в памяти, когда каталог для файла недоступен.
type MemoryStore struct {
	mu   sync.Mutex
	list []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.list), nil
}

func (s *MemoryStore) Save(name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = Insert(s.list, name, score)
	return nil
}
