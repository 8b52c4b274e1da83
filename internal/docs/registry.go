// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package docs

import (
	"fmt"
	"sync"

	"github.com/swaggo/swag"
)

// DefaultInstanceName is the swag registry name used by the API server.
const DefaultInstanceName = "ehealth"

// registeredDoc is a swag.Swagger holding a pre-rendered document.
type registeredDoc struct {
	mu  sync.RWMutex
	doc []byte
}

// ReadDoc implements swag.Swagger.
func (s *registeredDoc) ReadDoc() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.doc)
}

func (s *registeredDoc) set(doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

var (
	registeredMu sync.Mutex
	registered   = map[string]*registeredDoc{}
)

// Register renders doc and publishes it in the swag registry under name.
// http-swagger serves doc.json for that name through swag.ReadDoc.
// Registering the same name again replaces the document.
func Register(name string, doc *Document) error {
	raw, err := doc.JSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	registeredMu.Lock()
	defer registeredMu.Unlock()

	if s, ok := registered[name]; ok {
		// swag.Register panics on a duplicate name, so swap the content.
		s.set(raw)
		return nil
	}

	s := &registeredDoc{doc: raw}
	swag.Register(name, s)
	registered[name] = s
	return nil
}

// ReadDoc returns the registered document for name.
func ReadDoc(name string) (string, error) {
	return swag.ReadDoc(name)
}

// Publish builds the document from b and registers it under name.
func Publish(b *Builder, name string) (*Document, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build openapi document: %w", err)
	}
	if err := Register(name, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
