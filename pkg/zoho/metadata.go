package zoho

import (
	"context"
	"fmt"
)

const settingsPrefix = apiPrefix + "/settings"

// ModuleInfo describes a CRM module.
type ModuleInfo struct {
	ID            string `json:"id"`
	APIName       string `json:"apiName"`
	ModuleName    string `json:"moduleName"`
	SingularLabel string `json:"singularLabel"`
	PluralLabel   string `json:"pluralLabel"`
	Creatable     bool   `json:"creatable"`
	Viewable      bool   `json:"viewable"`
	Editable      bool   `json:"editable"`
	Deletable     bool   `json:"deletable"`
	Convertable   bool   `json:"convertable"`
}

type vendorModule struct {
	ID            string `json:"id"`
	APIName       string `json:"api_name"`
	ModuleName    string `json:"module_name"`
	SingularLabel string `json:"singular_label"`
	PluralLabel   string `json:"plural_label"`
	Creatable     bool   `json:"creatable"`
	Viewable      bool   `json:"viewable"`
	Editable      bool   `json:"editable"`
	Deletable     bool   `json:"deletable"`
	Convertable   bool   `json:"convertable"`
}

func (m vendorModule) info() ModuleInfo {
	return ModuleInfo(m)
}

type FieldInfo struct {
	ID             string          `json:"id"`
	APIName        string          `json:"apiName"`
	FieldLabel     string          `json:"fieldLabel"`
	DataType       string          `json:"dataType"`
	Length         int             `json:"length,omitempty"`
	Required       bool            `json:"required"`
	Visible        bool            `json:"visible"`
	ReadOnly       bool            `json:"readOnly"`
	CustomField    bool            `json:"customField"`
	PickListValues []PickListValue `json:"pickListValues,omitempty"`
}

type PickListValue struct {
	DisplayValue string `json:"displayValue"`
	ActualValue  string `json:"actualValue"`
}

type Layout struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Status   string          `json:"status,omitempty"`
	Sections []LayoutSection `json:"sections,omitempty"`
}

type LayoutSection struct {
	DisplayLabel   string        `json:"displayLabel"`
	SequenceNumber int           `json:"sequenceNumber"`
	Columns        int           `json:"columns"`
	Fields         []LayoutField `json:"fields"`
}

type LayoutField struct {
	ID         string `json:"id"`
	APIName    string `json:"apiName"`
	FieldLabel string `json:"fieldLabel"`
	DataType   string `json:"dataType"`
}

type CustomView struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	DisplayValue  string      `json:"displayValue"`
	SystemDefined bool        `json:"systemDefined"`
	Default       bool        `json:"default"`
	Criteria      interface{} `json:"criteria,omitempty"`
}

type RelatedList struct {
	ID           string `json:"id"`
	APIName      string `json:"apiName"`
	DisplayLabel string `json:"displayLabel"`
	Module       string `json:"module,omitempty"`
	Type         string `json:"type,omitempty"`
}

type modulesResponse struct {
	Modules []vendorModule `json:"modules"`
}

func (c *Client) ListModules(ctx context.Context) ([]ModuleInfo, error) {
	var resp modulesResponse
	if err := c.get(ctx, settingsPrefix+"/modules", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]ModuleInfo, 0, len(resp.Modules))
	for _, m := range resp.Modules {
		out = append(out, m.info())
	}
	return out, nil
}

func (c *Client) GetModule(ctx context.Context, apiName string) (*ModuleInfo, error) {
	var resp modulesResponse
	if err := c.get(ctx, settingsPrefix+"/modules/"+apiName, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Modules) == 0 {
		return nil, NewAPIError(fmt.Sprintf("Module not found: %s", apiName), 404)
	}
	m := resp.Modules[0].info()
	return &m, nil
}

func (c *Client) ListFields(ctx context.Context, moduleName string) ([]FieldInfo, error) {
	var resp struct {
		Fields []struct {
			ID             string `json:"id"`
			APIName        string `json:"api_name"`
			FieldLabel     string `json:"field_label"`
			DataType       string `json:"data_type"`
			Length         int    `json:"length"`
			Required       bool   `json:"required"`
			Visible        bool   `json:"visible"`
			ReadOnly       bool   `json:"read_only"`
			CustomField    bool   `json:"custom_field"`
			PickListValues []struct {
				DisplayValue string `json:"display_value"`
				ActualValue  string `json:"actual_value"`
			} `json:"pick_list_values"`
		} `json:"fields"`
	}
	if err := c.get(ctx, settingsPrefix+"/fields", map[string]string{"module": moduleName}, &resp); err != nil {
		return nil, err
	}

	out := make([]FieldInfo, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		fi := FieldInfo{
			ID:          f.ID,
			APIName:     f.APIName,
			FieldLabel:  f.FieldLabel,
			DataType:    f.DataType,
			Length:      f.Length,
			Required:    f.Required,
			Visible:     f.Visible,
			ReadOnly:    f.ReadOnly,
			CustomField: f.CustomField,
		}
		for _, v := range f.PickListValues {
			fi.PickListValues = append(fi.PickListValues, PickListValue(v))
		}
		out = append(out, fi)
	}
	return out, nil
}

func (c *Client) ListLayouts(ctx context.Context, moduleName string) ([]Layout, error) {
	var resp struct {
		Layouts []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Status   string `json:"status"`
			Sections []struct {
				DisplayLabel   string `json:"display_label"`
				SequenceNumber int    `json:"sequence_number"`
				Columns        int    `json:"columns"`
				Fields         []struct {
					ID         string `json:"id"`
					APIName    string `json:"api_name"`
					FieldLabel string `json:"field_label"`
					DataType   string `json:"data_type"`
				} `json:"fields"`
			} `json:"sections"`
		} `json:"layouts"`
	}
	if err := c.get(ctx, settingsPrefix+"/layouts", map[string]string{"module": moduleName}, &resp); err != nil {
		return nil, err
	}

	out := make([]Layout, 0, len(resp.Layouts))
	for _, l := range resp.Layouts {
		layout := Layout{ID: l.ID, Name: l.Name, Status: l.Status}
		for _, s := range l.Sections {
			section := LayoutSection{
				DisplayLabel:   s.DisplayLabel,
				SequenceNumber: s.SequenceNumber,
				Columns:        s.Columns,
				Fields:         make([]LayoutField, 0, len(s.Fields)),
			}
			for _, f := range s.Fields {
				section.Fields = append(section.Fields, LayoutField(f))
			}
			layout.Sections = append(layout.Sections, section)
		}
		out = append(out, layout)
	}
	return out, nil
}

func (c *Client) ListCustomViews(ctx context.Context, moduleName string) ([]CustomView, error) {
	var resp struct {
		CustomViews []struct {
			ID            string      `json:"id"`
			Name          string      `json:"name"`
			DisplayValue  string      `json:"display_value"`
			SystemDefined bool        `json:"system_defined"`
			Default       bool        `json:"default"`
			Criteria      interface{} `json:"criteria"`
		} `json:"custom_views"`
	}
	if err := c.get(ctx, settingsPrefix+"/custom_views", map[string]string{"module": moduleName}, &resp); err != nil {
		return nil, err
	}

	out := make([]CustomView, 0, len(resp.CustomViews))
	for _, cv := range resp.CustomViews {
		out = append(out, CustomView(cv))
	}
	return out, nil
}

func (c *Client) ListRelatedLists(ctx context.Context, moduleName string) ([]RelatedList, error) {
	var resp struct {
		RelatedLists []struct {
			ID           string `json:"id"`
			APIName      string `json:"api_name"`
			DisplayLabel string `json:"display_label"`
			Module       string `json:"module"`
			Type         string `json:"type"`
		} `json:"related_lists"`
	}
	if err := c.get(ctx, settingsPrefix+"/related_lists", map[string]string{"module": moduleName}, &resp); err != nil {
		return nil, err
	}

	out := make([]RelatedList, 0, len(resp.RelatedLists))
	for _, rl := range resp.RelatedLists {
		out = append(out, RelatedList(rl))
	}
	return out, nil
}
