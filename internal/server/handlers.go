package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ziadkadry99/xrforge/internal/engine"
	"github.com/ziadkadry99/xrforge/internal/history"
	"github.com/ziadkadry99/xrforge/internal/scene"
	"github.com/ziadkadry99/xrforge/internal/site"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
	Topic  string `json:"topic,omitempty"`
}

type generateResponse struct {
	ID            string      `json:"id,omitempty"`
	Topic         scene.Topic `json:"topic"`
	Title         string      `json:"title"`
	BackgroundURL string      `json:"background_url"`
	Document      string      `json:"document"`
}

type topicInfo struct {
	Topic         scene.Topic `json:"topic"`
	Title         string      `json:"title"`
	BackgroundURL string      `json:"background_url"`
	Keywords      []string    `json:"keywords"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return site.RenderIndex(buf, site.IndexData{})
	})
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest, site.IndexData{Error: "Invalid form submission."})
		return
	}
	prompt := r.PostForm.Get("prompt")
	topic := scene.Topic(r.PostForm.Get("topic"))

	resp, err := s.provider.Generate(r.Context(), engine.Request{Prompt: prompt, Topic: topic})
	if err != nil {
		status, msg := generateErrorStatus(err)
		if errors.Is(err, engine.ErrEmptyPrompt) {
			msg = "Please enter a prompt!"
		}
		s.renderError(w, status, site.IndexData{Prompt: prompt, Topic: topic, Error: msg})
		return
	}
	s.record(r, prompt, resp.Topic)

	s.renderPage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return site.RenderResult(buf, site.ResultData{
			Prompt:     prompt,
			Topic:      resp.Topic,
			Title:      resp.Title,
			Document:   resp.Document,
			PreviewURL: previewURL(prompt, topic),
		})
	})
}

// handlePreview serves the raw document. Previews are not recorded in
// history; the result page links here for a prompt it already recorded.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := s.provider.Generate(r.Context(), engine.Request{
		Prompt: q.Get("prompt"),
		Topic:  scene.Topic(q.Get("topic")),
	})
	if err != nil {
		status, msg := generateErrorStatus(err)
		http.Error(w, msg, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(resp.Document))
}

func (s *Server) handleGenerateAPI(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := s.provider.Generate(r.Context(), engine.Request{Prompt: req.Prompt, Topic: scene.Topic(req.Topic)})
	if err != nil {
		status, msg := generateErrorStatus(err)
		writeJSON(w, status, map[string]string{"error": msg})
		return
	}

	out := generateResponse{
		Topic:         resp.Topic,
		Title:         resp.Title,
		BackgroundURL: resp.BackgroundURL,
		Document:      resp.Document,
	}
	if entry, ok := s.record(r, req.Prompt, resp.Topic); ok {
		out.ID = entry.ID
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	var topics []topicInfo
	for _, t := range scene.Topics() {
		assets := scene.LookupAssets(t)
		topics = append(topics, topicInfo{
			Topic:         t,
			Title:         assets.Title,
			BackgroundURL: assets.BackgroundURL,
			Keywords:      scene.Keywords(t),
		})
	}
	writeJSON(w, http.StatusOK, topics)
}

// record stores a history entry when history is enabled. Failures are logged
// and never fail the request.
func (s *Server) record(r *http.Request, prompt string, topic scene.Topic) (history.Entry, bool) {
	if s.history == nil {
		return history.Entry{}, false
	}
	entry, err := s.history.Record(r.Context(), history.Entry{
		Prompt: prompt,
		Topic:  topic,
		Source: history.SourceHTTP,
	})
	if err != nil {
		s.logger.Warn("recording history failed", zap.Error(err), zap.String("topic", string(topic)))
		return history.Entry{}, false
	}
	return entry, true
}

// renderPage buffers the page so a template error can still produce a 500.
func (s *Server) renderPage(w http.ResponseWriter, status int, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.logger.Error("rendering page failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) renderError(w http.ResponseWriter, status int, data site.IndexData) {
	s.renderPage(w, status, func(buf *bytes.Buffer) error {
		return site.RenderIndex(buf, data)
	})
}

// generateErrorStatus maps a provider error to an HTTP status and message.
func generateErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrEmptyPrompt):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, engine.ErrUnknownTopic):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, engine.ErrRateLimited):
		return http.StatusTooManyRequests, err.Error()
	default:
		return http.StatusInternalServerError, "generation failed"
	}
}

func previewURL(prompt string, topic scene.Topic) string {
	q := url.Values{}
	q.Set("prompt", prompt)
	if topic != "" {
		q.Set("topic", string(topic))
	}
	return "/preview?" + q.Encode()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
