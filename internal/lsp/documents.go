package lsp

import "sync"

// Document is an open palette file with its most recent analysis.
type Document struct {
	Text     string
	Analysis *Analysis
}

// DocumentStore holds open documents keyed by URI. Documents are re-analyzed
// on every open and change, so reads always see a current analysis.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

func (s *DocumentStore) Open(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &Document{Text: text, Analysis: Analyze(uri, text)}
}

func (s *DocumentStore) Update(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &Document{Text: text, Analysis: Analyze(uri, text)}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc, ok
}
