package http

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"procurement/internal/core/domain/model/kernel"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const baseDocument = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Procurement API",
    "description": "Storage quotes, warehouse negotiation, bookings and their delivery chain.",
    "version": "1.0.0"
  },
  "servers": [{"url": "/api/v1"}],
  "paths": {},
  "components": {
    "securitySchemes": {
      "bearerAuth": {"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}
    }
  },
  "security": [{"bearerAuth": []}]
}`

var (
	uuidType  = reflect.TypeOf(kernel.UUID{})
	moneyType = reflect.TypeOf(kernel.Money{})
)

// OpenAPI describes the routes mounted by Register. Paths are relative to
// the /api/v1 server.
func (s *Server) OpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData([]byte(baseDocument))
	if err != nil {
		return nil, fmt.Errorf("load base document: %w", err)
	}

	errorRef, err := schemaRef(ErrorResponse{})
	if err != nil {
		return nil, err
	}

	for _, r := range s.routes() {
		op := &openapi3.Operation{
			OperationID: r.id,
			Summary:     r.summary,
			Tags:        []string{r.tag},
			Responses:   openapi3.NewResponses(),
		}

		path := openAPIPath(r.path)
		if strings.Contains(path, "{id}") {
			op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
				Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewUUIDSchema()),
			})
		}
		if r.id == "listWarehouseRFQs" {
			op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
				Value: openapi3.NewQueryParameter("status").
					WithDescription("sent, responded, expired or cancelled").
					WithSchema(openapi3.NewStringSchema()),
			})
		}

		if r.request != nil {
			ref, err := schemaRef(r.request)
			if err != nil {
				return nil, fmt.Errorf("%s request: %w", r.id, err)
			}
			op.RequestBody = &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref),
			}
		}

		resp := openapi3.NewResponse().WithDescription(r.summary)
		if r.response != nil {
			ref, err := schemaRef(r.response)
			if err != nil {
				return nil, fmt.Errorf("%s response: %w", r.id, err)
			}
			resp = resp.WithJSONSchemaRef(ref)
		}
		op.AddResponse(r.status, resp)
		op.AddResponse(0, openapi3.NewResponse().WithDescription("error").WithJSONSchemaRef(errorRef))

		doc.AddOperation(path, r.method, op)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	return doc, nil
}

// RegisterDocs serves the document at /swagger/doc.json and the UI under
// /swagger/. The route is public.
func (s *Server) RegisterDocs(ctx context.Context, e *echo.Echo) error {
	doc, err := s.OpenAPI(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	docs.raw.Store(string(raw))
	docsOnce.Do(func() {
		swag.Register(swag.Name, docs)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}

// docProvider hands the current document to swag, which only allows one
// registration per name.
type docProvider struct {
	raw atomic.Value
}

func (p *docProvider) ReadDoc() string {
	s, _ := p.raw.Load().(string)
	return s
}

var (
	docs     = &docProvider{}
	docsOnce sync.Once
)

func schemaRef(v any) (*openapi3.SchemaRef, error) {
	ref, err := openapi3gen.NewSchemaRefForValue(v, openapi3.Schemas{}, openapi3gen.SchemaCustomizer(customizeSchema))
	if err != nil {
		return nil, fmt.Errorf("generate schema for %T: %w", v, err)
	}
	return ref, nil
}

// customizeSchema describes kernel value objects by their JSON form.
func customizeSchema(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t {
	case uuidType:
		*schema = *openapi3.NewUUIDSchema()
	case moneyType:
		*schema = *openapi3.NewStringSchema().WithPattern(`^-?\d+(\.\d{1,2})?$`)
		schema.Example = "1200.00"
	}
	return nil
}

// openAPIPath turns /quotes/:id into /quotes/{id}.
func openAPIPath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			parts[i] = "{" + p[1:] + "}"
		}
	}
	return strings.Join(parts, "/")
}
