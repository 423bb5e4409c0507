// Package validate checks generated dashboards and rule files for PromQL
// syntax errors and references to metrics nothing exports.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/trendyol-seller/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// histogram and summary series suffixes stripped before the known-metric
// lookup.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses a single PromQL expression and checks every selector against
// known. where labels each finding.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: parsing %q: %v", where, expr, err))
		return res
	}

	seen := map[string]bool{}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" || seen[vs.Name] {
			return nil
		}
		seen[vs.Name] = true
		if !isKnown(vs.Name, known) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})

	return res
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range seriesSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every target expression of a built dashboard. The
// dashboard is walked through its JSON form, so any value that marshals to
// Grafana's panel layout is accepted.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}

	var doc panelTree
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	exprs := map[string]string{}
	doc.collect("", exprs)

	keys := make([]string, 0, len(exprs))
	for k := range exprs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, where := range keys {
		res.merge(Expr(where, exprs[where], known))
	}
	return res
}

type panelTree struct {
	Title   string      `json:"title"`
	Panels  []panelTree `json:"panels"`
	Targets []struct {
		RefID string `json:"refId"`
		Expr  string `json:"expr"`
	} `json:"targets"`
}

func (p panelTree) collect(prefix string, out map[string]string) {
	path := p.Title
	if prefix != "" {
		path = prefix + "/" + p.Title
	}
	for _, t := range p.Targets {
		if t.Expr == "" {
			continue
		}
		out[fmt.Sprintf("panel %q target %s", path, t.RefID)] = t.Expr
	}
	for _, child := range p.Panels {
		child.collect(path, out)
	}
}

// Rules validates the expressions of every rule in a PrometheusRule CR.
// Records defined earlier in the same CR count as known metrics.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	local := make(map[string]bool, len(known))
	for k, v := range known {
		local[k] = v
	}

	for _, g := range cr.Spec.Groups {
		for i, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %s rule %d: neither record nor alert set", g.Name, i))
				continue
			}
			res.merge(Expr(fmt.Sprintf("group %s rule %s", g.Name, name), r.Expr, local))
			if r.Record != "" {
				local[r.Record] = true
			}
		}
	}
	return res
}
