package integrationtests

import (
	"net/http"
	"testing"

	"wakeline/pkg/model"
	"wakeline/test/integration/testutil"
)

func TestOperatorDirectory(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	resp := client.POSTWithHeaders(t, "/api/v1/operators",
		testutil.ValidOperator("Sea Riders UAE"),
		map[string]string{"X-Actor-Role": "admin"},
	)
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created model.Operator
	testutil.DecodeData(t, resp, &created)
	if created.ID == "" {
		t.Fatal("expected created operator to have an ID")
	}

	resp = client.POST(t, "/api/v1/operators", testutil.ValidOperator("CrazyWake"))
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	resp = client.GET(t, "/api/v1/operators?limit=10&offset=0")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var operators []*model.Operator
	total := testutil.DecodePaginated(t, resp, &operators)
	if total != 2 || len(operators) != 2 {
		t.Errorf("expected 2 operators, got %d of %d", len(operators), total)
	}
	if len(operators) == 2 && operators[0].Name != "CrazyWake" {
		t.Errorf("newest operator should list first, got %s", operators[0].Name)
	}

	resp = client.GET(t, "/api/v1/operators/id/"+created.ID)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var fetched model.Operator
	testutil.DecodeData(t, resp, &fetched)
	if fetched.Name != "Sea Riders UAE" {
		t.Errorf("unexpected operator name: %s", fetched.Name)
	}
}

func TestOperatorValidation(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	invalid := testutil.ValidOperator("Bad Category")
	invalid["category"] = "diving"

	resp := client.POST(t, "/api/v1/operators", invalid)
	testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)

	resp = client.GET(t, "/api/v1/operators/id/does-not-exist")
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}
