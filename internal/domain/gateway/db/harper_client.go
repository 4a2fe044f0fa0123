package db

import (
	"encoding/base64"
	"fmt"

	"gif-api/internal/domain/model"
	"gif-api/pkg/http"
)

// Executor is the operations surface of the HarperDB client. Gateways depend
// on this interface so they can be tested without a live store.
type Executor interface {
	// SearchByValue returns the rows of table whose attribute equals value,
	// decoded into out (a pointer to a slice). An empty result is not an error.
	SearchByValue(table, attribute, value string, limit, offset int, out any) error

	// ScanAll returns every row of table, decoded into out.
	ScanAll(table string, out any) error

	// Upsert writes the given records to table. Records carrying a
	// store-assigned id update in place, the rest insert new rows.
	Upsert(table string, records any) (*UpsertResult, error)
}

// UpsertResult carries the store-assigned hashes of inserted rows.
type UpsertResult struct {
	Message        string   `json:"message"`
	UpsertedHashes []string `json:"upserted_hashes"`
}

type searchByValueRequest struct {
	Operation       string   `json:"operation"`
	Schema          string   `json:"schema"`
	Table           string   `json:"table"`
	SearchAttribute string   `json:"search_attribute"`
	SearchValue     string   `json:"search_value"`
	GetAttributes   []string `json:"get_attributes"`
	Limit           int      `json:"limit"`
	Offset          int      `json:"offset"`
}

type sqlRequest struct {
	Operation string `json:"operation"`
	SQL       string `json:"sql"`
}

type upsertRequest struct {
	Operation string `json:"operation"`
	Table     string `json:"table"`
	Records   any    `json:"records"`
}

type harperErrorResponse struct {
	Error string `json:"error"`
}

// HarperClient executes HarperDB operations over its JSON operations API.
// Every operation is a POST to the instance root with a Basic auth header.
type HarperClient struct {
	schema     string
	httpClient *http.Client
}

// NewHarperClient creates a HarperDB client for the given instance URL and
// schema, authenticating with the supplied credentials.
func NewHarperClient(baseURL, schema, username, password string, opts http.ClientOptions) *HarperClient {
	if opts.DefaultHeaders == nil {
		opts.DefaultHeaders = make(map[string]string)
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	opts.DefaultHeaders["Authorization"] = "Basic " + credentials

	return &HarperClient{
		schema:     schema,
		httpClient: http.NewHttpClient(baseURL, opts),
	}
}

// SearchByValue returns the rows of table whose attribute equals value.
func (hc *HarperClient) SearchByValue(table, attribute, value string, limit, offset int, out any) error {
	body := searchByValueRequest{
		Operation:       "search_by_value",
		Schema:          hc.schema,
		Table:           table,
		SearchAttribute: attribute,
		SearchValue:     value,
		GetAttributes:   []string{"*"},
		Limit:           limit,
		Offset:          offset,
	}

	return hc.execute("search_by_value", table, body, out)
}

// ScanAll returns every row of table.
func (hc *HarperClient) ScanAll(table string, out any) error {
	body := sqlRequest{
		Operation: "sql",
		SQL:       fmt.Sprintf("SELECT * FROM %s.%s", hc.schema, table),
	}

	return hc.execute("sql", table, body, out)
}

// Upsert writes the given records to table and returns the store-assigned
// hashes of inserted rows.
func (hc *HarperClient) Upsert(table string, records any) (*UpsertResult, error) {
	body := upsertRequest{
		Operation: "upsert",
		Table:     table,
		Records:   records,
	}

	result := &UpsertResult{}
	if err := hc.execute("upsert", table, body, result); err != nil {
		return nil, err
	}

	return result, nil
}

// execute posts a single operation body and decodes the response into out.
func (hc *HarperClient) execute(operation, table string, body any, out any) error {
	_, errResp, _, err := hc.httpClient.Request().
		WithMethod(http.POST).
		WithPath("/").
		WithBody(body).
		WithSuccessResp(out).
		WithErrorResp(&harperErrorResponse{}).
		Execute()

	if err == nil {
		return nil
	}

	if errResp != nil {
		if storeErr := errResp.(*harperErrorResponse); storeErr.Error != "" {
			return fmt.Errorf("%w: %s on %s: %s", model.ErrStore, operation, table, storeErr.Error)
		}
	}

	return fmt.Errorf("%w: %s on %s: %v", model.ErrStore, operation, table, err)
}
