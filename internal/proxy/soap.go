package proxy

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/ravenbix/rstools/models"
)

const (
	soapEnvNS   = "http://schemas.xmlsoap.org/soap/envelope/"
	reportingNS = "http://schemas.microsoft.com/sqlserver/reporting/2010/03/01/ReportServer"

	// endpointPath is appended to the server base URI when the caller
	// passes the server root instead of the full endpoint.
	endpointPath = "/ReportService2010.asmx"
)

// requestEnvelope wraps a single operation payload. Envelope and Body are
// emitted with the SOAP envelope namespace as their default namespace; the
// payload struct overrides it with the reporting namespace via its own
// xmlns attribute, which its children then inherit.
type requestEnvelope struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    requestBody
}

type requestBody struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
	Payload any
}

func newEnvelope(payload any) requestEnvelope {
	return requestEnvelope{
		Body: requestBody{Payload: payload},
	}
}

// wireProperty is the Property element of the 2010 schema.
type wireProperty struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

// wirePropertyList is the Properties element. Requests hold it behind a nil-able
// pointer: a path-tagged slice would still emit an empty <Properties></Properties>
// wrapper when there is nothing to send.
type wirePropertyList struct {
	Property []wireProperty
}

func toWireProperties(props models.Properties) *wirePropertyList {
	if len(props) == 0 {
		return nil
	}
	out := make([]wireProperty, 0, len(props))
	for _, p := range props {
		out = append(out, wireProperty{Name: p.Name, Value: p.Value})
	}
	return &wirePropertyList{Property: out}
}

func fromWireProperties(props []wireProperty) models.Properties {
	out := models.Properties{}
	for _, p := range props {
		out = out.Set(p.Name, p.Value)
	}
	return out
}

// Operation payloads. Element order matters to the server, so field order
// mirrors the 2010 WSDL.

type createLinkedItemRequest struct {
	XMLName    xml.Name          `xml:"CreateLinkedItem"`
	NS         string            `xml:"xmlns,attr"`
	ItemPath   string            `xml:"ItemPath"`
	Parent     string            `xml:"Parent"`
	Link       string            `xml:"Link"`
	Properties *wirePropertyList `xml:"Properties"`
}

type getItemTypeRequest struct {
	XMLName  xml.Name `xml:"GetItemType"`
	NS       string   `xml:"xmlns,attr"`
	ItemPath string   `xml:"ItemPath"`
}

type getItemLinkRequest struct {
	XMLName  xml.Name `xml:"GetItemLink"`
	NS       string   `xml:"xmlns,attr"`
	ItemPath string   `xml:"ItemPath"`
}

type setItemLinkRequest struct {
	XMLName  xml.Name `xml:"SetItemLink"`
	NS       string   `xml:"xmlns,attr"`
	ItemPath string   `xml:"ItemPath"`
	Link     string   `xml:"Link"`
}

type listChildrenRequest struct {
	XMLName   xml.Name `xml:"ListChildren"`
	NS        string   `xml:"xmlns,attr"`
	ItemPath  string   `xml:"ItemPath"`
	Recursive bool     `xml:"Recursive"`
}

type createFolderRequest struct {
	XMLName    xml.Name          `xml:"CreateFolder"`
	NS         string            `xml:"xmlns,attr"`
	Folder     string            `xml:"Folder"`
	Parent     string            `xml:"Parent"`
	Properties *wirePropertyList `xml:"Properties"`
}

type deleteItemRequest struct {
	XMLName  xml.Name `xml:"DeleteItem"`
	NS       string   `xml:"xmlns,attr"`
	ItemPath string   `xml:"ItemPath"`
}

type getPropertiesRequest struct {
	XMLName    xml.Name          `xml:"GetProperties"`
	NS         string            `xml:"xmlns,attr"`
	ItemPath   string            `xml:"ItemPath"`
	Properties *wirePropertyList `xml:"Properties"`
}

type setPropertiesRequest struct {
	XMLName    xml.Name          `xml:"SetProperties"`
	NS         string            `xml:"xmlns,attr"`
	ItemPath   string            `xml:"ItemPath"`
	Properties *wirePropertyList `xml:"Properties"`
}

// Response documents. Path tags match by local name, which sidesteps the
// namespace prefixes different server versions emit.

type getItemTypeResponse struct {
	Type string `xml:"Body>GetItemTypeResponse>Type"`
}

type getItemLinkResponse struct {
	Link string `xml:"Body>GetItemLinkResponse>Link"`
}

type listChildrenResponse struct {
	Items []wireCatalogItem `xml:"Body>ListChildrenResponse>CatalogItems>CatalogItem"`
}

type createFolderResponse struct {
	Item wireCatalogItem `xml:"Body>CreateFolderResponse>ItemInfo"`
}

type getPropertiesResponse struct {
	Values []wireProperty `xml:"Body>GetPropertiesResponse>Values>Property"`
}

// wireCatalogItem is the CatalogItem element of the 2010 schema. Dates come
// through as strings because the server omits the zone designator on some
// installations.
type wireCatalogItem struct {
	ID           string `xml:"ID"`
	Name         string `xml:"Name"`
	Path         string `xml:"Path"`
	TypeName     string `xml:"TypeName"`
	Description  string `xml:"Description"`
	Hidden       bool   `xml:"Hidden"`
	CreatedBy    string `xml:"CreatedBy"`
	ModifiedBy   string `xml:"ModifiedBy"`
	CreationDate string `xml:"CreationDate"`
	ModifiedDate string `xml:"ModifiedDate"`
}

func (w wireCatalogItem) toModel() models.CatalogItem {
	item := models.CatalogItem{
		ID:          w.ID,
		Name:        w.Name,
		Path:        w.Path,
		Type:        models.ItemType(w.TypeName),
		Description: w.Description,
		Hidden:      w.Hidden,
		CreatedBy:   w.CreatedBy,
		ModifiedBy:  w.ModifiedBy,
	}
	if w.TypeName == "" {
		item.Type = models.ItemTypeUnknown
	}
	item.CreationDate = parseWireTime(w.CreationDate)
	item.ModifiedDate = parseWireTime(w.ModifiedDate)
	return item
}

// wireTimeLayouts covers the timestamp shapes observed from real servers:
// full RFC 3339, and the zone-less dateTime older installations emit.
var wireTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseWireTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// faultEnvelope is the SOAP 1.1 fault shape of the 2010 endpoint. The detail
// block carries the rs* error code that callers actually match on.
type faultEnvelope struct {
	Code   string      `xml:"Body>Fault>faultcode"`
	Reason string      `xml:"Body>Fault>faultstring"`
	Detail faultDetail `xml:"Body>Fault>detail"`
}

type faultDetail struct {
	ErrorCode string `xml:"ErrorCode"`
	Message   string `xml:"Message"`
}

// errorCode returns the rs* error code, falling back to the faultcode
// element (which arrives prefix-qualified, e.g. "soap:Client.rsItemNotFound").
func (f faultEnvelope) errorCode() string {
	if f.Detail.ErrorCode != "" {
		return f.Detail.ErrorCode
	}

	code := f.Code
	if idx := strings.LastIndexByte(code, '.'); idx != -1 {
		code = code[idx+1:]
	}
	return code
}
