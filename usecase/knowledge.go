package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	domainKnowledge "github.com/rleclezio/digital-twin/domains/knowledge"
)

type knowledgeService struct {
	dir string
}

func NewKnowledgeService(dir string) domainKnowledge.IKnowledgeUsecase {
	return &knowledgeService{dir: dir}
}

// Load scans the knowledge directory and returns every document it could
// normalize, plus one diagnostic per ignored file. A missing directory or a
// broken file never fails the load; partial results are always returned.
func (s *knowledgeService) Load(ctx context.Context) (domainKnowledge.Base, []domainKnowledge.Diagnostic) {
	base := domainKnowledge.Base{}
	var ignored []domainKnowledge.Diagnostic

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		logrus.Warnf("[KNOWLEDGE] Data directory not found: %s", s.dir)
		return base, ignored
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		fileName := entry.Name()
		ext := strings.ToLower(filepath.Ext(fileName))
		name := strings.TrimSuffix(fileName, filepath.Ext(fileName))

		raw, err := os.ReadFile(filepath.Join(s.dir, fileName))
		if err != nil {
			logrus.WithError(err).Errorf("[KNOWLEDGE] Error loading %s", fileName)
			ignored = append(ignored, domainKnowledge.Diagnostic{File: fileName, Reason: "unreadable: " + err.Error()})
			continue
		}

		switch ext {
		case ".json":
			var parsed any
			if err := json.Unmarshal(raw, &parsed); err != nil {
				logrus.WithError(err).Errorf("[KNOWLEDGE] Error loading %s", fileName)
				ignored = append(ignored, domainKnowledge.Diagnostic{File: fileName, Reason: "invalid JSON: " + err.Error()})
				continue
			}
			pretty, err := json.MarshalIndent(parsed, "", "  ")
			if err != nil {
				ignored = append(ignored, domainKnowledge.Diagnostic{File: fileName, Reason: "re-serialization failed: " + err.Error()})
				continue
			}
			base[name] = domainKnowledge.Document{Name: name, Content: string(pretty)}
		case ".md", ".txt":
			base[name] = domainKnowledge.Document{Name: name, Content: string(raw)}
		default:
			// PDFs and friends need a conversion step; only json/md/txt are native.
			ignored = append(ignored, domainKnowledge.Diagnostic{File: fileName, Reason: "unsupported extension"})
			continue
		}

		logrus.WithFields(logrus.Fields{
			"file": fileName,
			"size": humanize.Bytes(uint64(len(raw))),
		}).Debug("[KNOWLEDGE] Document loaded")
	}

	return base, ignored
}
