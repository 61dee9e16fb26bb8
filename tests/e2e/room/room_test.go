//go:build e2e

package room_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"stayops/internal/handler/dto/request"
	"stayops/internal/handler/dto/response"
	"stayops/tests/common/authtest"
	"stayops/tests/common/builder"
	"stayops/tests/common/dbtest"
	"stayops/tests/common/httptest"
	"stayops/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL            = "/api/v1/rooms"
	roomDetailURL       = "/api/v1/rooms/%s"
	roomStatusURL       = "/api/v1/rooms/%s/status"
	roomHousekeepingURL = "/api/v1/rooms/%s/housekeeping-status"
	roomHistoryURL      = "/api/v1/rooms/%s/history?hotel_id=%s"
	roomSummaryURL      = "/api/v1/rooms/summary?hotel_id=%s"
)

type RoomSuite struct {
	e2e.SharedSuite
}

func (s *RoomSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

// seedInventory creates a hotel with one room type and returns both ids.
func (s *RoomSuite) seedInventory(t *testing.T, code string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	hotelID := dbtest.CreateTestHotel(t, s.DB, code)
	roomTypeID := dbtest.CreateTestRoomType(t, s.DB, hotelID, "Standard Twin")
	return hotelID, roomTypeID
}

func (s *RoomSuite) adminToken(t *testing.T) string {
	t.Helper()
	return authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
}

func (s *RoomSuite) createRoom(t *testing.T, token string, hotelID, roomTypeID uuid.UUID, number string) response.RoomResponse {
	t.Helper()

	reqBody := builder.NewRoomBuilder().
		WithHotelID(hotelID).
		WithRoomTypeID(roomTypeID).
		WithNumber(number).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.RoomResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.RowVersion)
	return created
}

// =============================================================================
// TestRoomLifecycle - create, read, conditional update
// =============================================================================

func (s *RoomSuite) TestRoomLifecycle() {
	s.Run("Normal case: created room is readable and row version round-trips", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-LIFE")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "101")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomDetailURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, `"`+created.RowVersion+`"`, w.Header().Get("ETag"))

		var fetched response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))

		expected := response.RoomResponse{
			ID:                 created.ID,
			HotelID:            hotelID.String(),
			RoomTypeID:         roomTypeID.String(),
			RoomTypeName:       "Standard Twin",
			Number:             "101",
			Status:             "active",
			HousekeepingStatus: "clean",
			RowVersion:         created.RowVersion,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.RoomResponse{}, "Floor", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, fetched, opts...); diff != "" {
			t.Errorf("Room response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: update with current row version succeeds and bumps it", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-UPD")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "201")

		reqBody := builder.NewRoomBuilder().
			WithRoomTypeID(roomTypeID).
			WithNumber("201A").
			WithStatus("out_of_service").
			WithHousekeepingStatus("dirty").
			BuildUpdateRequestDTO(&created.RowVersion)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(roomDetailURL, created.ID), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "201A", updated.Number)
		require.Equal(t, "out_of_service", updated.Status)
		require.Equal(t, "dirty", updated.HousekeepingStatus)
		require.NotEqual(t, created.RowVersion, updated.RowVersion, "row version should change on update")
	})

	s.Run("Normal case: If-Match header stands in for the body token", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-IFM")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "202")

		reqBody := builder.NewRoomBuilder().
			WithRoomTypeID(roomTypeID).
			WithNumber("202").
			BuildUpdateRequestDTO(nil)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPut,
			fmt.Sprintf(roomDetailURL, created.ID), reqBody, token,
			map[string]string{"If-Match": `W/"` + created.RowVersion + `"`})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: stale row version is rejected with conflict", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-STALE")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "203")

		// First update consumes the token
		first := builder.NewRoomBuilder().
			WithRoomTypeID(roomTypeID).
			WithNumber("203").
			WithStatus("out_of_service").
			BuildUpdateRequestDTO(&created.RowVersion)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(roomDetailURL, created.ID), first, token)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		// Replay with the now stale token
		second := builder.NewRoomBuilder().
			WithRoomTypeID(roomTypeID).
			WithNumber("203").
			BuildUpdateRequestDTO(&created.RowVersion)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(roomDetailURL, created.ID), second, token)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "modified by another request")
	})

	s.Run("Concurrent case: racing updates with one token yield one winner", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-CAS")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "205")

		const workers = 4
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := builder.NewRoomBuilder().
					WithRoomTypeID(roomTypeID).
					WithNumber(fmt.Sprintf("205-%d", i)).
					BuildUpdateRequestDTO(&created.RowVersion)
				w := httptest.PerformRequest(t, s.Router, http.MethodPut,
					fmt.Sprintf(roomDetailURL, created.ID), reqBody, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		okCount := 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				okCount++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, okCount, "exactly one update should win the version race")
	})

	s.Run("Error case: update without any row version is rejected", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-NOVER")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "204")

		reqBody := builder.NewRoomBuilder().
			WithRoomTypeID(roomTypeID).
			WithNumber("204").
			BuildUpdateRequestDTO(nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(roomDetailURL, created.ID), reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Row version is required")
	})
}

// =============================================================================
// TestRoomStatusAndHistory - lifecycle changes leave an audit trail
// =============================================================================

func (s *RoomSuite) TestRoomStatusAndHistory() {
	s.Run("Normal case: status changes are recorded newest first", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-HIST")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "301")

		reason := "burst pipe"
		ws := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(roomStatusURL, created.ID),
			request.ChangeRoomStatusRequest{Status: "out_of_service", Reason: &reason}, token)
		require.Equal(t, http.StatusOK, ws.Code, ws.Body.String())

		var statusRes response.RoomWriteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ws.Body, &statusRes))
		require.NotEqual(t, created.RowVersion, statusRes.RowVersion)

		wh := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(roomHousekeepingURL, created.ID),
			request.ChangeHousekeepingStatusRequest{HousekeepingStatus: "dirty"}, token)
		require.Equal(t, http.StatusOK, wh.Code, wh.Body.String())

		hw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomHistoryURL, created.ID, hotelID), nil, token)
		require.Equal(t, http.StatusOK, hw.Code, hw.Body.String())

		var body struct {
			History []response.RoomHistoryResponse `json:"history"`
			Total   int64                          `json:"total"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, hw.Body, &body))
		require.Len(t, body.History, 3)
		require.Equal(t, int64(3), body.Total)

		require.Equal(t, "HousekeepingChanged", body.History[0].Action)
		require.Nil(t, body.History[0].Status)
		require.NotNil(t, body.History[0].HousekeepingStatus)
		require.Equal(t, "dirty", *body.History[0].HousekeepingStatus)

		require.Equal(t, "StatusChanged", body.History[1].Action)
		require.NotNil(t, body.History[1].Status)
		require.Equal(t, "out_of_service", *body.History[1].Status)
		require.Nil(t, body.History[1].HousekeepingStatus)
		require.Equal(t, "burst pipe", body.History[1].Reason)

		require.Equal(t, "Created", body.History[2].Action)
		require.NotNil(t, body.History[2].Status)
		require.NotNil(t, body.History[2].HousekeepingStatus)
	})

	s.Run("Normal case: no-op status change leaves version and history alone", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-NOOP")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "302")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(roomStatusURL, created.ID),
			request.ChangeRoomStatusRequest{Status: "active"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.RoomWriteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, created.RowVersion, res.RowVersion, "no-op change should not bump the version")

		hw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomHistoryURL, created.ID, hotelID), nil, token)
		require.Equal(t, http.StatusOK, hw.Code)

		var body struct {
			History []response.RoomHistoryResponse `json:"history"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, hw.Body, &body))
		require.Len(t, body.History, 1, "only the creation entry should exist")
	})

	s.Run("Error case: history under the wrong hotel is rejected", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-OWN")
		otherHotelID := dbtest.CreateTestHotel(t, s.DB, "HTL-OTHER")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "304")

		hw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomHistoryURL, created.ID, otherHotelID), nil, token)
		httptest.AssertErrorResponse(t, hw, http.StatusBadRequest, "does not belong to the hotel")
	})

	s.Run("Normal case: deletion hides the room from every read model", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-DEL")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "303")

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(roomDetailURL, created.ID), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomDetailURL, created.ID), nil, token)
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, "Not found")

		hw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomHistoryURL, created.ID, hotelID), nil, token)
		httptest.AssertErrorResponse(t, hw, http.StatusNotFound, "Not found")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			roomsURL+"?hotel_id="+hotelID.String(), nil, token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var body struct {
			Rooms []response.RoomListItemResponse `json:"rooms"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &body))
		require.Empty(t, body.Rooms)
	})
}

// =============================================================================
// TestRoomNumberUniqueness - duplicate numbers within a hotel
// =============================================================================

func (s *RoomSuite) TestRoomNumberUniqueness() {
	s.Run("Error case: duplicate number in the same hotel is rejected", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-DUP")
		token := s.adminToken(t)

		s.createRoom(t, token, hotelID, roomTypeID, "401")

		reqBody := builder.NewRoomBuilder().
			WithHotelID(hotelID).
			WithRoomTypeID(roomTypeID).
			WithNumber("401").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Normal case: same number is fine in a different hotel", func() {
		t := s.T()
		hotelA, roomTypeA := s.seedInventory(t, "HTL-A")
		hotelB, roomTypeB := s.seedInventory(t, "HTL-B")
		token := s.adminToken(t)

		s.createRoom(t, token, hotelA, roomTypeA, "402")
		s.createRoom(t, token, hotelB, roomTypeB, "402")
	})

	s.Run("Normal case: deleting a room frees its number", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-FREE")
		token := s.adminToken(t)

		created := s.createRoom(t, token, hotelID, roomTypeID, "403")

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(roomDetailURL, created.ID), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		s.createRoom(t, token, hotelID, roomTypeID, "403")
	})

	s.Run("Concurrent case: racing creates of the same number yield one winner", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-RACE")
		token := s.adminToken(t)

		const workers = 6
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := builder.NewRoomBuilder().
					WithHotelID(hotelID).
					WithRoomTypeID(roomTypeID).
					WithNumber("500").
					BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		createdCount := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				createdCount++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, createdCount, "exactly one create should win the race")
	})
}

// =============================================================================
// TestRoomPermissions - role boundaries on room routes
// =============================================================================

func (s *RoomSuite) TestRoomPermissions() {
	s.Run("Normal case: operator can flip housekeeping but not operational status", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-PERM")
		adminToken := s.adminToken(t)
		created := s.createRoom(t, adminToken, hotelID, roomTypeID, "601")

		operatorToken := authtest.LoginUser(t, s.Router, "operator@example.com", "password123")

		hw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(roomHousekeepingURL, created.ID),
			request.ChangeHousekeepingStatusRequest{HousekeepingStatus: "inspected"}, operatorToken)
		require.Equal(t, http.StatusOK, hw.Code, hw.Body.String())

		sw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(roomStatusURL, created.ID),
			request.ChangeRoomStatusRequest{Status: "inactive"}, operatorToken)
		require.Equal(t, http.StatusForbidden, sw.Code, sw.Body.String())
	})

	s.Run("Error case: viewer cannot create rooms", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-VIEW")
		viewerToken := authtest.LoginUser(t, s.Router, "viewer@example.com", "password123")

		reqBody := builder.NewRoomBuilder().
			WithHotelID(hotelID).
			WithRoomTypeID(roomTypeID).
			WithNumber("602").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, viewerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: unauthenticated requests are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRoomListAndSummary - read models over the inventory
// =============================================================================

func (s *RoomSuite) TestRoomListAndSummary() {
	s.Run("Normal case: list filters by status", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-LIST")
		token := s.adminToken(t)

		s.createRoom(t, token, hotelID, roomTypeID, "701")
		outOfService := s.createRoom(t, token, hotelID, roomTypeID, "702")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(roomStatusURL, outOfService.ID),
			request.ChangeRoomStatusRequest{Status: "out_of_service"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			roomsURL+"?hotel_id="+hotelID.String()+"&status=out_of_service", nil, token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var body struct {
			Rooms []response.RoomListItemResponse `json:"rooms"`
			Total int64                           `json:"total"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &body))
		require.Len(t, body.Rooms, 1)
		require.Equal(t, int64(1), body.Total, "total should count matches, not the page")
		require.Equal(t, "702", body.Rooms[0].Number)
	})

	s.Run("Normal case: total spans beyond the requested page", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-PAGE")
		token := s.adminToken(t)

		for _, number := range []string{"711", "712", "713"} {
			s.createRoom(t, token, hotelID, roomTypeID, number)
		}

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			roomsURL+"?hotel_id="+hotelID.String()+"&limit=2", nil, token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var body struct {
			Rooms []response.RoomListItemResponse `json:"rooms"`
			Total int64                           `json:"total"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &body))
		require.Len(t, body.Rooms, 2)
		require.Equal(t, int64(3), body.Total)
	})

	s.Run("Normal case: summary aggregates per room type", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedInventory(t, "HTL-SUM")
		token := s.adminToken(t)

		s.createRoom(t, token, hotelID, roomTypeID, "801")
		s.createRoom(t, token, hotelID, roomTypeID, "802")
		dirty := s.createRoom(t, token, hotelID, roomTypeID, "803")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(roomHousekeepingURL, dirty.ID),
			request.ChangeHousekeepingStatusRequest{HousekeepingStatus: "dirty"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomSummaryURL, hotelID.String()), nil, token)
		require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())

		var body struct {
			Summary []response.RoomSummaryResponse `json:"summary"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &body))
		require.Len(t, body.Summary, 1)

		expected := response.RoomSummaryResponse{
			RoomTypeID:   roomTypeID.String(),
			RoomTypeName: "Standard Twin",
			Total:        3,
			Active:       3,
			OutOfService: 0,
			Dirty:        1,
		}
		if diff := cmp.Diff(expected, body.Summary[0]); diff != "" {
			t.Errorf("Summary mismatch (-want +got):\n%s", diff)
		}
	})
}
