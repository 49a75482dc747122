package handlers_test

import (
	"net/http"
	"testing"

	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/service"
	"github.com/petwatch/petwatch/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCreateAndListDogs(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildWithToken(t, ts)

	resp := doRequest(t, http.MethodPost, ts.URL()+"/dog", token,
		service.CreateDogInput{Name: "Rex", Age: 5, Breed: "beagle"})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created domain.Dog
	testutil.AssertJSONResponse(t, resp, &created)
	assert.Equal(t, "Rex", created.Name)

	listResp := doRequest(t, http.MethodGet, ts.URL()+"/dog", token, nil)
	testutil.AssertStatusCode(t, listResp, http.StatusOK)

	var dogs []domain.Dog
	testutil.AssertJSONResponse(t, listResp, &dogs)
	assert.Len(t, dogs, 1)
	assert.Equal(t, created.ID, dogs[0].ID)
}

func TestDogs_RequireToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := doRequest(t, http.MethodPost, ts.URL()+"/dog", "",
		service.CreateDogInput{Name: "Rex", Age: 5, Breed: "beagle"})
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)

	listResp := doRequest(t, http.MethodGet, ts.URL()+"/dog", "", nil)
	testutil.AssertStatusCode(t, listResp, http.StatusUnauthorized)
}

func TestCreateDog_Validation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildWithToken(t, ts)

	resp := doRequest(t, http.MethodPost, ts.URL()+"/dog", token,
		service.CreateDogInput{Name: "", Age: 5, Breed: "beagle"})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}
