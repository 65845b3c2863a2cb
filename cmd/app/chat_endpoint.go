package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
	"github.com/hyerinam29-hash/my-face-landing/internal/services"
)

type chatRequest struct {
	Messages  []model.ChatMessage `json:"messages"`
	WebSearch bool                `json:"webSearch"`
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"maxResults"`
}

// Public: the chat widget does not require a session.
func registerChatRoutes(g *echo.Group, cs *services.ChatService, searcher services.WebSearcher) {
	g.POST("/chat", func(c echo.Context) error {
		req := new(chatRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		reply, sources, err := cs.Reply(c.Request().Context(), req.Messages, req.WebSearch)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"reply":   reply,
			"sources": sources,
		})
	})

	// Direct web-search proxy used by the widget's "search" action.
	g.POST("/search/trigger", func(c echo.Context) error {
		req := new(searchRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if searcher == nil {
			return c.JSON(http.StatusOK, echo.Map{"results": []model.SearchResult{}})
		}

		results, err := searcher.Search(c.Request().Context(), req.Query, req.MaxResults)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"results": results})
	})
}
