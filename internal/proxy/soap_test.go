package proxy

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenbix/rstools/models"
)

func TestEnvelope_MarshalCreateLinkedItem(t *testing.T) {
	req := createLinkedItemRequest{
		NS:       reportingNS,
		ItemPath: "Monthly Sales (EU)",
		Parent:   "/Finance/Linked",
		Link:     "/Finance/Monthly Sales",
		Properties: &wirePropertyList{Property: []wireProperty{
			{Name: "Description", Value: "EU view"},
			{Name: "Hidden", Value: "true"},
		}},
	}

	payload, err := xml.Marshal(newEnvelope(req))
	require.NoError(t, err)

	doc := string(payload)
	assert.Contains(t, doc, "http://schemas.xmlsoap.org/soap/envelope/")
	assert.Contains(t, doc, `<CreateLinkedItem xmlns="`+reportingNS+`">`)
	assert.Contains(t, doc, "<ItemPath>Monthly Sales (EU)</ItemPath>")
	assert.Contains(t, doc, "<Parent>/Finance/Linked</Parent>")
	assert.Contains(t, doc, "<Link>/Finance/Monthly Sales</Link>")
	assert.Contains(t, doc, "<Properties><Property><Name>Description</Name><Value>EU view</Value></Property>")
}

func TestEnvelope_MarshalOmitsEmptyProperties(t *testing.T) {
	req := createLinkedItemRequest{
		NS:       reportingNS,
		ItemPath: "Shortcut",
		Parent:   "/Linked",
		Link:     "/Reports/Base",
	}

	payload, err := xml.Marshal(newEnvelope(req))
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "<Properties>")
}

func TestToWireProperties_EmptyListIsNil(t *testing.T) {
	assert.Nil(t, toWireProperties(nil))
	assert.Nil(t, toWireProperties(models.Properties{}))
}

func TestFaultEnvelope_DecodeDetailErrorCode(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>The item '/Reports/Nope' cannot be found. ---&gt; rsItemNotFound</faultstring>
      <detail>
        <ErrorCode xmlns="` + reportingNS + `">rsItemNotFound</ErrorCode>
        <Message xmlns="` + reportingNS + `">The item '/Reports/Nope' cannot be found.</Message>
      </detail>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

	var fault faultEnvelope
	require.NoError(t, xml.Unmarshal([]byte(doc), &fault))

	assert.Equal(t, "rsItemNotFound", fault.errorCode())
	assert.Equal(t, "The item '/Reports/Nope' cannot be found.", fault.Detail.Message)
}

func TestFaultEnvelope_ErrorCodeFallsBackToFaultcode(t *testing.T) {
	fault := faultEnvelope{Code: "soap:Client.rsAccessDenied", Reason: "denied"}
	assert.Equal(t, "rsAccessDenied", fault.errorCode())
}

func TestMapFault_KnownCodes(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"rsItemNotFound", ErrItemNotFound},
		{"rsItemAlreadyExists", ErrItemAlreadyExists},
		{"rsAccessDenied", ErrAccessDenied},
		{"rsAccessDeniedToSecureData", ErrAccessDenied},
		{"rsInvalidItemPath", ErrInvalidItemPath},
		{"rsWrongItemType", ErrWrongItemType},
	}

	for _, tc := range cases {
		fault := faultEnvelope{Detail: faultDetail{ErrorCode: tc.code, Message: "server says no"}}
		err := mapFault(fault)
		assert.ErrorIs(t, err, tc.want, tc.code)
		assert.Contains(t, err.Error(), "server says no")
	}
}

func TestMapFault_UnknownCode(t *testing.T) {
	fault := faultEnvelope{
		Detail: faultDetail{ErrorCode: "rsInternalError", Message: "boom"},
	}

	err := mapFault(fault)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rsInternalError")
	assert.Contains(t, err.Error(), "boom")
}

func TestParseWireTime_Layouts(t *testing.T) {
	withZone := parseWireTime("2026-03-01T10:30:00Z")
	require.NotNil(t, withZone)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), withZone.UTC())

	zoneless := parseWireTime("2026-03-01T10:30:00")
	require.NotNil(t, zoneless)

	assert.Nil(t, parseWireTime(""))
	assert.Nil(t, parseWireTime("yesterday"))
}

func TestWireCatalogItem_ToModel(t *testing.T) {
	w := wireCatalogItem{
		ID:           "abc-123",
		Name:         "Monthly Sales",
		Path:         "/Finance/Monthly Sales",
		TypeName:     "Report",
		Description:  "Month-end numbers",
		Hidden:       true,
		CreationDate: "2026-01-15T08:00:00Z",
	}

	item := w.toModel()
	assert.Equal(t, models.ItemTypeReport, item.Type)
	assert.True(t, item.Hidden)
	require.NotNil(t, item.CreationDate)
	assert.Nil(t, item.ModifiedDate)
}

func TestWireCatalogItem_EmptyTypeIsUnknown(t *testing.T) {
	item := wireCatalogItem{Name: "x"}.toModel()
	assert.Equal(t, models.ItemTypeUnknown, item.Type)
}
