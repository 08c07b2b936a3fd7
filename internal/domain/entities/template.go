package entities

// Template is a free-form report template. The service lists templates but
// never interprets their content.
type Template map[string]any

func (t Template) ID() string {
	id, _ := t["templateId"].(string)
	return id
}
