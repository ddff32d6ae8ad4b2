package graph

import (
	"text/template"
)

var digraphTemplate = template.Must(template.New("digraph").Parse(digraphTemplateText))

const digraphTemplateText = `digraph {
	compound = "true"
	newrank = "true"
	subgraph "root" {
{{ range $node := $.Nodes }}		{{ printf "%q" $node.ID }} [label={{ printf "%q" $node.Name }} shape={{ printf "%q" $node.Shape }} style={{ printf "%q" $node.Style }} fillcolor={{ printf "%q" $node.FillColor }} tooltip={{ printf "%q" $node.Tooltip }}]
{{ end }}{{ range $edge := $.Edges }}		{{ printf "%q" $edge.FromNodeID }} -> {{ printf "%q" $edge.ToNodeID }} [style={{ printf "%q" $edge.Style }} color={{ printf "%q" $edge.Color }} tooltip={{ printf "%q" $edge.Tooltip }}]
{{ end }}	}
}
`
