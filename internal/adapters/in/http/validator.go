package http

import (
	"errors"
	"strings"

	"taxi/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// requestValidator checks incoming requests against the OpenAPI document
// before they reach a handler. Requests for paths the document does not
// describe are passed through to echo's own routing errors.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(ctx)
				}
				return writeError(ctx, err, "Failed to route request")
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return writeError(ctx, requestError(err), "")
			}

			return next(ctx)
		}
	}, nil
}

// requestError turns a validation failure into an errs value so that it
// renders as 400 like any other input error.
func requestError(err error) error {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}

	name := "request body"
	if reqErr.Parameter != nil {
		name = reqErr.Parameter.Name
	}

	if errors.Is(err, openapi3filter.ErrInvalidRequired) {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 && reqErr.Parameter == nil {
			name = strings.Join(pointer, ".")
		}
		// A missing property and an explicit null are both absent input.
		if schemaErr.SchemaField == "required" || schemaErr.SchemaField == "nullable" {
			return errs.NewValueIsRequiredErrorWithCause(name, err)
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(name, err)
}
