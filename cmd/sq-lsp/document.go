package main

import (
	"sync"

	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/parse"
	"github.com/frenchy64/quotefold/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	node      *form.Node
	parseErr  error
	positions map[*form.Node]*token.Pos
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := make(map[*form.Node]*token.Pos)
	node, err := parse.Parse([]byte(content), parse.ParsePositions(positions))
	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		parseErr:  err,
		positions: positions,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
