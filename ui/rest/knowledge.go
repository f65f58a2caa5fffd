package rest

import (
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"

	domainKnowledge "github.com/rleclezio/digital-twin/domains/knowledge"
	"github.com/rleclezio/digital-twin/pkg/utils"
)

type Knowledge struct {
	Service domainKnowledge.IKnowledgeUsecase
}

func InitRestKnowledge(app fiber.Router, service domainKnowledge.IKnowledgeUsecase) Knowledge {
	rest := Knowledge{Service: service}
	app.Get("/knowledge", rest.ListDocuments)
	return rest
}

// ListDocuments reloads the knowledge directory and reports what the twin is
// grounded on, including any files the loader had to ignore.
func (h *Knowledge) ListDocuments(c *fiber.Ctx) error {
	base, ignored := h.Service.Load(c.UserContext())

	docs := make([]domainKnowledge.DocumentInfo, 0, len(base))
	for name, doc := range base {
		docs = append(docs, domainKnowledge.DocumentInfo{
			Name: name,
			Size: humanize.Bytes(uint64(len(doc.Content))),
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Knowledge base loaded",
		Results: fiber.Map{
			"documents": docs,
			"ignored":   ignored,
		},
	})
}
