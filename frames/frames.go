// Package frames follows the frameset of a saved Degree Works audit down to
// the document that holds the requirements table.
package frames

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
)

const (
	BodyContainerFrame = "frBodyContainer"
	BodyFrame          = "frBody"
)

type Resolver struct {
	// Logf, when set, is told about every document that is loaded
	Logf func(format string, args ...any)
}

// Document is a parsed file along with the real path it was read from
type Document struct {
	*goquery.Document
	Path string
}

func (r Resolver) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}

// Load parses the file at path. The file is closed before Load returns.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}
	defer file.Close()

	realPath, err := filepath.EvalSymlinks(file.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}
	realPath, err = filepath.Abs(realPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}

	document, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w %v: %v", ErrParse, path, err)
	}

	return &Document{Document: document, Path: realPath}, nil
}

// Source returns the src of the frame with the given name
func Source(document *Document, name string) (string, error) {
	frame := document.Find("frame").FilterFunction(func(i int, frame *goquery.Selection) bool {
		frameName, exists := frame.Attr("name")
		return exists && frameName == name
	}).First()
	if frame.Length() == 0 {
		return "", fmt.Errorf("%w: %v has no frame named %v", ErrMalformedInput, document.Path, name)
	}

	src, exists := frame.Attr("src")
	if !exists {
		return "", fmt.Errorf("%w: frame %v in %v has no src", ErrMalformedInput, name, document.Path)
	}
	return src, nil
}

// Join resolves src the way a browser would if base were a file: URL
func Join(base string, src string) (string, error) {
	reference, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: invalid frame src %q: %v", ErrMalformedInput, src, err)
	}
	if reference.Scheme != "" && reference.Scheme != "file" {
		return "", fmt.Errorf("%w: frame src %q is not a local file", ErrInputNotFound, src)
	}

	baseUrl := &url.URL{Scheme: "file", Path: filepath.ToSlash(base)}
	resolved := baseUrl.ResolveReference(reference)

	return filepath.FromSlash(resolved.Path), nil
}

func (r Resolver) follow(document *Document, name string) (*Document, error) {
	src, err := Source(document, name)
	if err != nil {
		return nil, err
	}

	path, err := Join(document.Path, src)
	if err != nil {
		return nil, err
	}
	r.logf("following frame %v to %v", name, path)

	return Load(path)
}

// Resolve loads the root document and follows frBodyContainer and then
// frBody to the requirements document.
func (r Resolver) Resolve(path string) (*goquery.Document, error) {
	r.logf("loading %v", path)
	root, err := Load(path)
	if err != nil {
		return nil, err
	}

	bodyContainer, err := r.follow(root, BodyContainerFrame)
	if err != nil {
		return nil, err
	}

	body, err := r.follow(bodyContainer, BodyFrame)
	if err != nil {
		return nil, err
	}

	return body.Document, nil
}

func Resolve(path string) (*goquery.Document, error) {
	return Resolver{}.Resolve(path)
}
