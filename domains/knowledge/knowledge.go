package knowledge

import "context"

// Document is one knowledge-base entry, keyed by its base file name
// (extension stripped). Structured sources hold a pretty-printed canonical
// rendering; plain-text sources hold the raw file content.
type Document struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Base maps document names to their normalized content. It is rebuilt fresh
// on every prompt build and discarded with the request.
type Base map[string]Document

// Diagnostic describes a file the loader had to ignore. Ignored files never
// fail a load; they are reported so the behavior stays observable.
type Diagnostic struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Persona is the identity the model role-plays as, seeded from the reserved
// "facts" document when present.
type Persona struct {
	FullName string `json:"full_name"`
	Name     string `json:"name"`
}

// DocumentInfo is the admin-facing summary of a loaded document.
type DocumentInfo struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

type IKnowledgeUsecase interface {
	Load(ctx context.Context) (Base, []Diagnostic)
}
