package handlers

import (
	"net/http"
	"strings"

	"staylink/internal/services"

	"github.com/gin-gonic/gin"
)

type FaqHandler struct {
	faqs *services.FaqService
}

func NewFaqHandler(faqs *services.FaqService) *FaqHandler {
	return &FaqHandler{faqs: faqs}
}

// Index lists FAQs, optionally filtered by a keyword against the question.
func (h *FaqHandler) Index(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	page := pageParam(c)

	faqs, total, err := h.faqs.FindAllFaqs(keyword, page)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load FAQs.")
		return
	}

	Render(c, http.StatusOK, "faq/index.html", gin.H{
		"Title":       "FAQ",
		"Faqs":        faqs,
		"Keyword":     keyword,
		"Searched":    keyword != "",
		"CurrentPage": page,
		"TotalPages":  totalPages(total, services.FaqsPerPage),
	})
}
