package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/smallbiznis/feedscope/internal/audit/domain"
)

// CreateAudit accepts a multipart upload with a required "products" file
// and an optional "categories" file, runs the audit and returns the full
// report. Form fields: language, min_description_length, persist.
func (s *Server) CreateAudit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)

	productFile, err := s.readFeedFile(c, "products")
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if productFile == nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	categoryFile, err := s.readFeedFile(c, "categories")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	minDescription := 0
	if raw := strings.TrimSpace(c.PostForm("min_description_length")); raw != "" {
		minDescription, err = strconv.Atoi(raw)
		if err != nil || minDescription < 0 {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
	}

	persist := true
	if raw := strings.TrimSpace(c.PostForm("persist")); raw != "" {
		persist, err = strconv.ParseBool(raw)
		if err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
	}

	resp, err := s.auditSvc.Create(c.Request.Context(), auditdomain.CreateRequest{
		Products:             *productFile,
		Categories:           categoryFile,
		Language:             c.PostForm("language"),
		MinDescriptionLength: minDescription,
		Persist:              persist,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListAudits(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		limit = parsed
	}

	items, err := s.auditSvc.List(c.Request.Context(), auditdomain.ListRequest{Limit: limit})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) GetAudit(c *gin.Context) {
	resp, err := s.auditSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// readFeedFile reads one multipart file into memory. A missing part is
// not an error; the caller decides whether the part was required.
func (s *Server) readFeedFile(c *gin.Context, field string) (*auditdomain.FeedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
			if err == multipart.ErrMessageTooLarge {
				return nil, ErrInvalidRequest
			}
			return nil, nil
		}
		return nil, ErrInvalidRequest
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &auditdomain.FeedFile{Name: header.Filename, Data: data}, nil
}
