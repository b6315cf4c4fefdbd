package controllerImp

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"eduassist/entities"
	"eduassist/pkg/extract"
	"eduassist/pkg/module/repository"
)

type ModuleCtrl struct {
	repo      repository.ModuleRepository
	uploadDir string
	allow     map[string]bool

	// extraction hooks, replaceable in tests
	extractPDF func(path string) (string, error)
	fetchURL   func(u string) (text, title string, err error)
}

func New(repo repository.ModuleRepository, uploadDir, allowedDomains string) *ModuleCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		if h = strings.TrimSpace(strings.ToLower(h)); h != "" {
			allow[h] = true
		}
	}
	return &ModuleCtrl{
		repo:       repo,
		uploadDir:  uploadDir,
		allow:      allow,
		extractPDF: extract.PDFText,
		fetchURL:   extract.FetchMainText,
	}
}

func (h *ModuleCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no file provided"})
	}
	moduleName := c.FormValue("module_name")
	if moduleName == "" {
		moduleName = "Untitled Module"
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "only PDF files allowed"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	stored := uuid.NewString() + "_" + filepath.Base(fh.Filename)
	path := filepath.Join(h.uploadDir, stored)
	dst, err := os.Create(path)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	dst.Close()

	// Extraction failure is not an upload failure: store the module with
	// empty text and let the resolver report the missing content.
	text, err := h.extractPDF(path)
	if err != nil {
		log.Printf("[module] extract %s: %v", stored, err)
		text = ""
	}

	m := &entities.Module{
		ModuleName:  moduleName,
		Filename:    fh.Filename,
		Filepath:    path,
		ContentText: text,
	}
	if err := h.repo.Create(m); err != nil {
		os.Remove(path)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success":     true,
		"module_id":   m.ModuleID,
		"filename":    m.Filename,
		"module_name": m.ModuleName,
		"message":     "PDF uploaded successfully",
	})
}

type ingestURLReq struct {
	URL        string `json:"url"`
	ModuleName string `json:"module_name"`
}

func (h *ModuleCtrl) IngestURL(c echo.Context) error {
	var req ingestURLReq
	if err := c.Bind(&req); err != nil || req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(req.URL)
	if err != nil || u.Host == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	text, title, err := h.fetchURL(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if req.ModuleName == "" {
		req.ModuleName = title
	}
	if req.ModuleName == "" {
		req.ModuleName = "Untitled Module"
	}

	m := &entities.Module{
		ModuleName:  req.ModuleName,
		SourceURL:   req.URL,
		ContentText: text,
	}
	if err := h.repo.Create(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success":     true,
		"module_id":   m.ModuleID,
		"module_name": m.ModuleName,
		"source_url":  m.SourceURL,
	})
}

func (h *ModuleCtrl) List(c echo.Context) error {
	ms, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"modules": ms})
}

func (h *ModuleCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.repo.FindByID(uint(id))
	if err != nil {
		return moduleLookupErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"module_id":   m.ModuleID,
		"filename":    m.Filename,
		"module_name": m.ModuleName,
		"source_url":  m.SourceURL,
		"content":     m.ContentText,
	})
}

func (h *ModuleCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.repo.FindByID(uint(id))
	if err != nil {
		return moduleLookupErr(c, err)
	}
	if err := h.repo.Delete(m.ModuleID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if m.Filepath != "" {
		if err := os.Remove(m.Filepath); err != nil && !os.IsNotExist(err) {
			log.Printf("[module] remove %s: %v", m.Filepath, err)
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Module deleted"})
}

func moduleLookupErr(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "module not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
