package model

// ChatMessage roles follow the chat model's convention: "user",
// "model", plus "system" for locally injected guidance that is folded
// into the prompt rather than sent as history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SearchResult is one web search hit used to ground a chat answer.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
