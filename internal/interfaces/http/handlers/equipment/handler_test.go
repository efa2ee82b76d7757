package equipment

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/application/equipment/dto"
	"gearguard/internal/application/equipment/usecases"
	maintenancedto "gearguard/internal/application/maintenance/dto"
	maintenanceusecases "gearguard/internal/application/maintenance/usecases"
	domain "gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/interfaces/http/handlers/testutil"
	"gearguard/internal/shared/constants"
	"gearguard/internal/shared/errors"
)

type mockCreateUC struct {
	got    usecases.CreateEquipmentCommand
	called bool
}

func (m *mockCreateUC) Execute(ctx context.Context, cmd usecases.CreateEquipmentCommand) (*dto.EquipmentDTO, error) {
	m.got, m.called = cmd, true
	return &dto.EquipmentDTO{ID: 1, Name: cmd.Params.Name}, nil
}

type mockGetUC struct{ err error }

func (m *mockGetUC) Execute(ctx context.Context, id uint) (*dto.EquipmentDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.EquipmentDTO{ID: id}, nil
}

type mockListUC struct{ got usecases.ListEquipmentQuery }

func (m *mockListUC) Execute(ctx context.Context, query usecases.ListEquipmentQuery) ([]*dto.EquipmentDTO, error) {
	m.got = query
	return []*dto.EquipmentDTO{}, nil
}

type mockUpdateUC struct{ got usecases.UpdateEquipmentCommand }

func (m *mockUpdateUC) Execute(ctx context.Context, cmd usecases.UpdateEquipmentCommand) (*dto.EquipmentDTO, error) {
	m.got = cmd
	return &dto.EquipmentDTO{ID: cmd.EquipmentID}, nil
}

type mockDeleteUC struct{ err error }

func (m *mockDeleteUC) Execute(ctx context.Context, id uint) error { return m.err }

type mockExportUC struct{ got domain.Filter }

func (m *mockExportUC) Execute(ctx context.Context, filter domain.Filter, w io.Writer) (int, error) {
	m.got = filter
	_, err := w.Write([]byte("PK"))
	return 3, err
}

type mockListRequestsUC struct{ got maintenanceusecases.ListRequestsQuery }

func (m *mockListRequestsUC) Execute(ctx context.Context, query maintenanceusecases.ListRequestsQuery) ([]*maintenancedto.RequestDTO, error) {
	m.got = query
	return []*maintenancedto.RequestDTO{}, nil
}

type deps struct {
	create   *mockCreateUC
	get      *mockGetUC
	list     *mockListUC
	update   *mockUpdateUC
	del      *mockDeleteUC
	export   *mockExportUC
	requests *mockListRequestsUC
}

func newTestHandler() (*Handler, *deps) {
	d := &deps{
		create:   &mockCreateUC{},
		get:      &mockGetUC{},
		list:     &mockListUC{},
		update:   &mockUpdateUC{},
		del:      &mockDeleteUC{},
		export:   &mockExportUC{},
		requests: &mockListRequestsUC{},
	}
	return NewHandler(d.create, d.get, d.list, d.update, d.del, d.export, d.requests, testutil.NewMockLogger()), d
}

func TestHandler_CreateEquipment(t *testing.T) {
	t.Run("normalises status and parses dates", func(t *testing.T) {
		h, d := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/equipment", map[string]any{
			"name":          "Pump A",
			"serial_number": "PMP-1",
			"category":      "Pumps",
			"department":    "Production",
			"status":        "under_maintenance",
			"purchase_date": "2023-05-10",
			"team_id":       2,
		})
		h.CreateEquipment(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		p := d.create.got.Params
		assert.Equal(t, vo.StatusUnderMaintenance, p.Status)
		require.NotNil(t, p.PurchaseDate)
		assert.Equal(t, "2023-05-10", p.PurchaseDate.Format(constants.DateLayout))
		assert.Nil(t, p.WarrantyExpiry)
		require.NotNil(t, p.TeamID)
		assert.Equal(t, uint(2), *p.TeamID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h, d := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/equipment", map[string]any{"name": "Pump A"})
		h.CreateEquipment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, d.create.called)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, resp.Error.Details, "serial_number is required")
	})

	t.Run("bad date", func(t *testing.T) {
		h, d := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/equipment", map[string]any{
			"name": "Pump A", "serial_number": "PMP-1", "category": "Pumps", "department": "Production",
			"warranty_expiry": "12/31/2025",
		})
		h.CreateEquipment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, d.create.called)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, d := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/equipment", map[string]any{
			"name": "Pump A", "serial_number": "PMP-1", "category": "Pumps", "department": "Production",
			"status": "Broken",
		})
		h.CreateEquipment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, d.create.called)
	})
}

func TestHandler_UpdateEquipment_ClearsReferences(t *testing.T) {
	h, d := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodPut, "/api/equipment/7", map[string]any{
		"team_id":       0,
		"purchase_date": "",
		"status":        "scrapped",
	})
	testutil.SetURLParam(c, "id", "7")
	h.UpdateEquipment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	ch := d.update.got.Changes
	assert.Equal(t, uint(7), d.update.got.EquipmentID)
	require.NotNil(t, ch.TeamID)
	assert.Equal(t, uint(0), *ch.TeamID)
	require.NotNil(t, ch.PurchaseDate)
	assert.True(t, ch.PurchaseDate.IsZero())
	assert.Nil(t, ch.WarrantyExpiry)
	require.NotNil(t, ch.Status)
	assert.Equal(t, vo.StatusScrapped, *ch.Status)
	assert.Nil(t, ch.Name)
}

func TestHandler_ListEquipment_Filters(t *testing.T) {
	h, d := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/equipment", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "usable", "team_id": "3"})
	h.ListEquipment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, d.list.got.Filter.Status)
	assert.Equal(t, vo.StatusUsable, *d.list.got.Filter.Status)
	assert.Equal(t, uint(3), *d.list.got.Filter.TeamID)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/equipment", nil)
	testutil.SetQueryParams(c, map[string]string{"team_id": "x"})
	h.ListEquipment(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEquipment_NotFound(t *testing.T) {
	h, d := newTestHandler()
	d.get.err = errors.NewNotFoundError("equipment not found")
	c, w := testutil.NewTestContext(http.MethodGet, "/api/equipment/99", nil)
	testutil.SetURLParam(c, "id", "99")
	h.GetEquipment(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteEquipment(t *testing.T) {
	h, _ := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/api/equipment/4", nil)
	testutil.SetURLParam(c, "id", "4")
	h.DeleteEquipment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Equipment deleted successfully", resp.Message)
}

func TestHandler_ListEquipmentRequests(t *testing.T) {
	h, d := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/equipment/5/requests", nil)
	testutil.SetURLParam(c, "id", "5")
	h.ListEquipmentRequests(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, d.requests.got.Filter.EquipmentID)
	assert.Equal(t, uint(5), *d.requests.got.Filter.EquipmentID)
}

func TestHandler_ExportEquipment(t *testing.T) {
	h, d := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/equipment/export", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "Reserved"})
	h.ExportEquipment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.ContentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"equipment-")
	assert.Equal(t, "PK", w.Body.String())
	assert.Equal(t, vo.StatusReserved, *d.export.got.Status)
}
