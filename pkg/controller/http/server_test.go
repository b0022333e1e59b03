package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/trialworks/protodraft/pkg/controller/http"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/repository/memory"
	"github.com/trialworks/protodraft/pkg/service/seed"
	"github.com/trialworks/protodraft/pkg/usecase"
)

type recordingIndexer struct {
	examples []*model.StoredExample
}

func (i *recordingIndexer) Index(ctx context.Context, example *model.StoredExample) error {
	i.examples = append(i.examples, example)
	return nil
}

type staticRetriever struct {
	results []model.RetrievedExample
}

func (r *staticRetriever) Retrieve(ctx context.Context, profile *model.TrialProfile, k int) []model.RetrievedExample {
	return r.results
}

func newTestServer(opts ...usecase.Option) *httptest.Server {
	uc := usecase.New(memory.New(), opts...)
	return httptest.NewServer(httpctrl.New(uc))
}

func requestProfile() model.TrialProfile {
	return model.TrialProfile{
		Title:         "Phase II Study of TW-101 in Hypertension",
		Indication:    "Hypertension",
		Phase:         types.Phase2,
		SampleSize:    120,
		DurationWeeks: 12,
		TreatmentArms: []string{"TW-101 10mg", "Placebo"},
		InclusionCriteria: []string{
			"Adults aged 18-75 years",
			"Seated systolic blood pressure 140-179 mmHg",
		},
		ExclusionCriteria: []string{"Pregnant or breastfeeding"},
		Endpoints: []model.Endpoint{
			{Name: "Change in systolic blood pressure", Type: types.EndpointPrimary},
		},
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	gt.NoError(t, err).Required()

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	gt.NoError(t, err).Required()
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&v)).Required()
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

	body := decodeJSON[map[string]string](t, resp)
	gt.Value(t, body["status"]).Equal("healthy")
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	t.Run("valid profile", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/generate", requestProfile())
		gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)

		outcome := decodeJSON[model.GenerationOutcome](t, resp)
		gt.Bool(t, strings.HasPrefix(outcome.ID.String(), "PROT-")).True()
		gt.Array(t, outcome.Sections).Length(types.ExpectedSectionCount)
		gt.Bool(t, outcome.Confidence > 0).True()
		gt.Bool(t, outcome.Narrative != "").True()
	})

	t.Run("invalid profile", func(t *testing.T) {
		profile := requestProfile()
		profile.SampleSize = 0

		resp := postJSON(t, srv.URL+"/api/v1/generate", profile)
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusBadRequest)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/v1/generate", "application/json",
			strings.NewReader("{not json"))
		gt.NoError(t, err).Required()
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusBadRequest)
	})
}

func TestProtocolEndpoints(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/generate", requestProfile())
	outcome := decodeJSON[model.GenerationOutcome](t, resp)

	t.Run("get stored protocol", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/protocols/" + outcome.ID.String())
		gt.NoError(t, err).Required()
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		stored := decodeJSON[model.GenerationOutcome](t, resp)
		gt.Value(t, stored.ID).Equal(outcome.ID)
	})

	t.Run("unknown protocol", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/protocols/" + model.NewProtocolID().String())
		gt.NoError(t, err).Required()
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	})

	t.Run("list protocols", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/protocols/")
		gt.NoError(t, err).Required()
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		body := decodeJSON[map[string]json.RawMessage](t, resp)
		var count int
		gt.NoError(t, json.Unmarshal(body["count"], &count)).Required()
		gt.Value(t, count).Equal(1)
	})

	t.Run("delete protocol", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete,
			srv.URL+"/api/v1/protocols/"+outcome.ID.String(), nil)
		gt.NoError(t, err).Required()

		resp, err := http.DefaultClient.Do(req)
		gt.NoError(t, err).Required()
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		check, err := http.Get(srv.URL + "/api/v1/protocols/" + outcome.ID.String())
		gt.NoError(t, err).Required()
		defer check.Body.Close()
		gt.Value(t, check.StatusCode).Equal(http.StatusNotFound)
	})
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	t.Run("clean profile passes", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/validate", requestProfile())
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		outcome := decodeJSON[model.ValidationOutcome](t, resp)
		gt.Value(t, outcome.Status).Equal(types.ValidationPassed)
	})

	t.Run("missing endpoint fails", func(t *testing.T) {
		profile := requestProfile()
		profile.Endpoints = nil

		resp := postJSON(t, srv.URL+"/api/v1/validate", profile)
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		outcome := decodeJSON[model.ValidationOutcome](t, resp)
		gt.Value(t, outcome.Status).Equal(types.ValidationFailed)
	})
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/generate", requestProfile())
	outcome := decodeJSON[model.GenerationOutcome](t, resp)

	t.Run("renders stored protocol", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/export", map[string]string{
			"protocol_id": outcome.ID.String(),
			"format":      "odm-xml",
		})
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		result := decodeJSON[map[string]string](t, resp)
		gt.Value(t, result["format"]).Equal("odm-xml")
		gt.Bool(t, strings.Contains(result["content"], "ODMVersion")).True()
	})

	t.Run("unsupported format", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/export", map[string]string{
			"protocol_id": outcome.ID.String(),
			"format":      "pdf",
		})
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusBadRequest)
	})

	t.Run("unknown protocol", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/v1/export", map[string]string{
			"protocol_id": model.NewProtocolID().String(),
			"format":      "json",
		})
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	})
}

func TestExampleEndpoints(t *testing.T) {
	t.Run("search without retriever is unavailable", func(t *testing.T) {
		srv := newTestServer()
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/api/v1/examples/search", requestProfile())
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusServiceUnavailable)
	})

	t.Run("search with retriever", func(t *testing.T) {
		sim := 0.9
		retriever := &staticRetriever{results: []model.RetrievedExample{
			{ID: model.NewExampleID(), Profile: requestProfile(), Similarity: &sim},
		}}
		srv := newTestServer(usecase.WithRetriever(retriever))
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/api/v1/examples/search?k=2", requestProfile())
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		body := decodeJSON[map[string]json.RawMessage](t, resp)
		var count int
		gt.NoError(t, json.Unmarshal(body["count"], &count)).Required()
		gt.Value(t, count).Equal(1)
	})

	t.Run("seed without indexer is unavailable", func(t *testing.T) {
		srv := newTestServer()
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/api/v1/examples/seed", map[string]string{})
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusServiceUnavailable)
	})

	t.Run("seed with indexer", func(t *testing.T) {
		indexer := &recordingIndexer{}
		srv := newTestServer(usecase.WithIndexer(indexer))
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/api/v1/examples/seed", map[string]string{})
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		body := decodeJSON[map[string]int](t, resp)
		gt.Value(t, body["seeded"]).Equal(len(seed.SampleProfiles()))
	})

	t.Run("stats reflect the corpus", func(t *testing.T) {
		srv := newTestServer()
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/v1/examples/stats")
		gt.NoError(t, err).Required()
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

		stats := decodeJSON[map[string]int](t, resp)
		gt.Value(t, stats["count"]).Equal(0)
	})
}
