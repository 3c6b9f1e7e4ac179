// Package server is the HTTP shell around the analysis pipeline:
// upload endpoints, an async job registry with status polling, and
// artifact downloads for completed jobs.
package server

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"

	"github.com/grantdozier/LCR-Area-Calculations-Module/analyze"
	"github.com/grantdozier/LCR-Area-Calculations-Module/document"
	"github.com/grantdozier/LCR-Area-Calculations-Module/export"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
	"github.com/grantdozier/LCR-Area-Calculations-Module/ocr"
	"github.com/grantdozier/LCR-Area-Calculations-Module/preview"
)

// Server wires the pipeline to the HTTP surface.
type Server struct {
	cfg      *Config
	log      *slog.Logger
	registry *Registry
	queue    *queue
	app      *fiber.App

	ocrEnabled bool
}

// New builds the server. The fiber app is fully routed on return;
// call Listen to serve.
func New(cfg *Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		registry: NewRegistry(),
	}
	// Probe once at startup; per-page clients are opened on demand so
	// the engine's native resources are released after every use.
	if client, err := ocr.New(); err == nil {
		client.Close()
		s.ocrEnabled = true
	}
	s.queue = newQueue(cfg.Workers, s.registry, s.newAnalyzer, log)

	app := fiber.New(fiber.Config{
		AppName:   "plancover",
		BodyLimit: cfg.BodyLimitMB * 1024 * 1024,
	})
	app.Use(recover.New())

	app.Get("/", s.handleRoot)
	app.Get("/api/health", s.handleHealth)
	app.Post("/api/process", s.handleProcess)
	app.Post("/api/process/start", s.handleProcessStart)
	app.Get("/api/process/status/:id", s.handleStatus)
	app.Get("/api/export/csv/:id", s.handleExport("csv"))
	app.Get("/api/export/geojson/:id", s.handleExport("geojson"))
	app.Get("/api/export/runoff/:id", s.handleExport("runoff"))
	app.Get("/api/export/xlsx/:id", s.handleExport("xlsx"))

	s.app = app
	return s, nil
}

// Listen serves until the listener fails.
func (s *Server) Listen() error {
	s.log.Info("listening", "addr", s.cfg.ListenAddr, "workers", s.cfg.Workers)
	return s.app.Listen(s.cfg.ListenAddr)
}

// Shutdown stops accepting connections and drains the work queue.
func (s *Server) Shutdown() error {
	err := s.app.Shutdown()
	s.queue.close()
	return err
}

// newAnalyzer builds the per-job pipeline: progress reporting into the
// registry, OCR text recovery when compiled in, preview rendering when
// enabled.
func (s *Server) newAnalyzer(jobID string) *analyze.Analyzer {
	a := &analyze.Analyzer{
		Log: s.log,
		Progress: func(cur, total int) {
			if jobID != "" {
				s.registry.SetProgress(jobID, cur, total)
			}
		},
	}
	if s.ocrEnabled {
		a.RecoverText = recognizeImage
	}
	if s.cfg.Preview {
		r := &preview.Renderer{MaxWidth: s.cfg.PreviewWidth}
		a.RenderPreview = r.Render
	}
	return a
}

func (s *Server) handleRoot(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "online",
		"module": "plancover",
	})
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"dependencies": fiber.Map{
			"pdf": "available",
			"ocr": availability(s.ocrEnabled),
		},
	})
}

// recognizeImage runs one OCR pass with a dedicated client, closing it
// afterwards so engine resources never outlive the page.
func recognizeImage(image []byte) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()
	return client.RecognizeImage(image)
}

func availability(enabled bool) string {
	if !enabled {
		return "unavailable"
	}
	return "available"
}

// saveUpload validates the multipart file and writes it to the upload
// directory under a fresh id.
func (s *Server) saveUpload(file *multipart.FileHeader) (string, error) {
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return "", fmt.Errorf("only PDF files are accepted")
	}
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.cfg.UploadDir, uuid.NewString()+".pdf")
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("saving upload: %w", err)
	}
	return path, nil
}

func (s *Server) handleProcess(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file required in multipart/form-data",
		})
	}
	path, err := s.saveUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer os.Remove(path)

	doc, err := document.Open(path)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("processing error: %v", err),
		})
	}
	res, err := s.newAnalyzer("").Analyze(doc, file.Filename)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("processing error: %v", err),
		})
	}
	return c.JSON(res)
}

func (s *Server) handleProcessStart(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file required in multipart/form-data",
		})
	}
	path, err := s.saveUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id := s.registry.Create(file.Filename)
	s.queue.enqueue(job{id: id, path: path, filename: file.Filename})
	s.log.Info("job queued", "job_id", id, "filename", file.Filename)
	return c.JSON(fiber.Map{"job_id": id})
}

func (s *Server) handleStatus(c fiber.Ctx) error {
	j, err := s.registry.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	resp := fiber.Map{
		"status":        string(j.Status),
		"current_sheet": j.CurrentSheet,
		"total_sheets":  j.TotalSheets,
		"filename":      j.Filename,
	}
	switch j.Status {
	case JobCompleted:
		resp["result"] = j.Result
	case JobError:
		resp["error"] = j.Error
	}
	return c.JSON(resp)
}

// handleExport serves a download artifact generated from a completed
// job's result.
func (s *Server) handleExport(format string) fiber.Handler {
	return func(c fiber.Ctx) error {
		j, err := s.registry.Get(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		}
		if j.Status != JobCompleted || j.Result == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": fmt.Sprintf("job is %s, not completed", j.Status),
			})
		}

		data, contentType, ext, err := renderExport(format, j.Result)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s_results.%s"`, j.ID, ext))
		return c.Send(data)
	}
}

func renderExport(format string, res *model.ProjectResult) (data []byte, contentType, ext string, err error) {
	switch format {
	case "csv":
		data, err = export.CSV(res)
		return data, "text/csv", "csv", err
	case "geojson":
		data, err = export.GeoJSON(res)
		return data, "application/geo+json", "geojson", err
	case "runoff":
		data, err = export.Runoff(res)
		return data, "application/json", "json", err
	case "xlsx":
		data, err = export.XLSX(res)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", err
	}
	return nil, "", "", fmt.Errorf("unknown export format %q", format)
}
