package orm

import (
	"net/url"
	"strings"
)

// Storage resolves a stored file name to a public URL.
type Storage interface {
	URL(name string) string
}

// FileSystemStorage serves files stored under a common base URL.
type FileSystemStorage struct {
	BaseURL string
}

// URL joins name onto the base URL, escaping each path segment.
func (s FileSystemStorage) URL(name string) string {
	name = strings.TrimLeft(name, "/")
	if s.BaseURL == "" {
		return "/" + name
	}

	joined, err := url.JoinPath(s.BaseURL, strings.Split(name, "/")...)
	if err != nil {
		return strings.TrimRight(s.BaseURL, "/") + "/" + name
	}

	return joined
}

// File references a stored file. The zero value means no file is set.
type File struct {
	Name    string  `json:"name" yaml:"name"`
	Storage Storage `json:"-" yaml:"-"`
}

// IsZero reports whether no file is set.
func (f File) IsZero() bool {
	return f.Name == ""
}

// URL resolves the file through its storage, or returns the bare name
// when no storage is attached.
func (f File) URL() string {
	if f.IsZero() {
		return ""
	}

	if f.Storage == nil {
		return f.Name
	}

	return f.Storage.URL(f.Name)
}

// Image is a File with known pixel dimensions.
type Image struct {
	File

	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
}
