package report

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/langcolors/pkg/chain"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body {
  font-size: 30px
}

tr {
  line-height: 50px;
}

td {
  padding-left: 15px;
}

table {
  width: 100%;
}

.outline_text {
  color: white;
  text-shadow:
    -1px -1px 0 #000,
    1px -1px 0 #000,
    -1px 1px 0 #000,
    1px 1px 0 #000;
}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{template "table" .ByName}}
{{template "table" .ByNearest}}
</body>
</html>
{{define "table"}}
<h2>{{.Heading}}</h2>
<table>
<tr>
<th>Language</th><th>Color</th>
</tr>
{{- range .Entries}}
<tr class="outline_text">
<td bgcolor="{{.Color.Hex}}">{{.Name}}</td>
<td bgcolor="{{.Color.Hex}}"><code>{{.Color.Hex}}</code></td>
</tr>
{{- end}}
</table>
{{- end}}
`))

type tableSection struct {
	Heading string
	Entries []chain.Entry
}

// RenderHTML renders the two-table HTML page.
func RenderHTML(r Report) ([]byte, error) {
	data := struct {
		Title     string
		ByName    tableSection
		ByNearest tableSection
	}{
		Title:     r.Title,
		ByName:    tableSection{"By Name", r.ByName},
		ByNearest: tableSection{"By Nearest Color", r.ByNearest},
	}
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
