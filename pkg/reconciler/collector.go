package reconciler

import (
	"slices"

	"github.com/s2wiki/pagetools/pkg/pages"
)

// Set is the document set of one run, keyed by entity name. A Set is built
// from scratch for every run and is not safe for concurrent mutation.
type Set struct {
	docs map[string]*pages.Document
}

// NewSet creates an empty document set.
func NewSet() *Set {
	return &Set{docs: make(map[string]*pages.Document)}
}

// Aggregate groups records by entity name. Every record becomes exactly one
// page of exactly one document, in the order received. Two records with the
// same name and game are both kept.
func Aggregate(records []*pages.Page) *Set {
	set := NewSet()
	for _, rec := range records {
		doc, ok := set.docs[rec.Name]
		if !ok {
			doc = pages.NewDocument(rec.Name)
			set.docs[rec.Name] = doc
		}
		doc.Add(rec)
	}
	return set
}

// Get returns the document for name.
func (s *Set) Get(name string) (*pages.Document, bool) {
	doc, ok := s.docs[name]
	return doc, ok
}

// Put stores doc under its name, replacing any existing document.
func (s *Set) Put(doc *pages.Document) {
	s.docs[doc.Name] = doc
}

// Len returns the number of documents.
func (s *Set) Len() int {
	return len(s.docs)
}

// Pages returns the number of pages across all documents.
func (s *Set) Pages() int {
	n := 0
	for _, doc := range s.docs {
		n += len(doc.Pages)
	}
	return n
}

// Names returns the entity names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Documents returns the documents sorted by name.
func (s *Set) Documents() []*pages.Document {
	names := s.Names()
	docs := make([]*pages.Document, len(names))
	for i, name := range names {
		docs[i] = s.docs[name]
	}
	return docs
}
