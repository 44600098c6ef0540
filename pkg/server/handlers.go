package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/matte/pkg/buildinfo"
	"github.com/matzehuels/matte/pkg/convert"
	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/preview"
	"github.com/matzehuels/matte/pkg/settings"
)

type boxJSON struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type templateJSON struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	TopBuffer bool      `json:"topBuffer"`
	Cuts      []string  `json:"cuts"`
	Boxes     []boxJSON `json:"boxes"`
}

func newTemplateJSON(i int, t layout.Template) templateJSON {
	out := templateJSON{Index: i, Name: t.Name, TopBuffer: t.TopBuffer, Cuts: []string{}, Boxes: []boxJSON{}}
	for _, c := range t.Cuts {
		out.Cuts = append(out.Cuts, c.String())
	}
	for _, b := range layout.MustPartition(t) {
		out.Boxes = append(out.Boxes, boxJSON{
			ID: b.ID, Name: b.Name(),
			X: b.Rect.X, Y: b.Rect.Y, Width: b.Rect.Width, Height: b.Rect.Height,
		})
	}
	return out
}

type healthJSON struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthJSON{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	out := make([]templateJSON, 0, len(s.catalog))
	for i, t := range s.catalog {
		out = append(out, newTemplateJSON(i, t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	i, t, err := s.template(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newTemplateJSON(i, t))
}

func (s *Server) handleTemplatePreview(w http.ResponseWriter, r *http.Request) {
	_, t, err := s.template(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.diagram(w, r, t, nil)
}

func (s *Server) handleDocumentDiagram(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	filled := make(map[int]bool, len(doc.Regions))
	for _, id := range doc.Boxes() {
		filled[int(id)] = true
	}
	s.diagram(w, r, s.catalog[doc.Template], filled)
}

func (s *Server) diagram(w http.ResponseWriter, r *http.Request, t layout.Template, filled map[int]bool) {
	format, err := preview.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.diagrams.Render(r.Context(), t, format, preview.DiagramOptions{Filled: filled})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, format.ContentType(), data)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := settings.Encode(doc, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, "application/json", data)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	req := convert.NewRequest(doc, convert.DefaultOutput)
	writeBytes(w, "text/plain; charset=utf-8", []byte(convert.CommandLine(s.binary, convert.BuildArgs(req))+"\n"))
}

func (s *Server) handleComposite(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	img, err := preview.Composite(doc, preview.DefaultScale)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := preview.WriteComposite(&buf, img, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, "image/png", buf.Bytes())
}
