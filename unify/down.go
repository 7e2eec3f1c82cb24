package unify

import "github.com/tomitaglr/glrnlp/rule"

// UnifyDown merges an ambient ("param"-filtered) view of src into dst,
// then applies checklist assertions. Grounded directly on
// GLRParser/parser.py's unify_down(self, dst, param, src, checklist).
func UnifyDown(dst rule.FeatureMap, param rule.FParam, src rule.FeatureMap, checklist rule.Checklist) (rule.FeatureMap, error) {
	pdict := buildPDict(param, src)

	out := dst.Clone()
	if out == nil {
		out = rule.FeatureMap{}
	}
	for k, v := range pdict {
		if existing, ok := out[k]; ok {
			if !existing.Equal(v) {
				return nil, &UnifyError{Feature: k, Wanted: existing, Got: v, Msg: "ambient feature conflicts with rule feature"}
			}
			continue
		}
		out[k] = v
	}

	for _, entry := range checklist {
		v, present := out[entry.Name]
		switch {
		case entry.Assertion.Literal == "" && !entry.Assertion.Negated:
			if !present {
				return nil, &UnifyError{Feature: entry.Name, Msg: "checklist requires feature to be present"}
			}
		case entry.Assertion.Literal == "" && entry.Assertion.Negated:
			if present {
				return nil, &UnifyError{Feature: entry.Name, Msg: "checklist requires feature to be absent"}
			}
		case !entry.Assertion.Negated:
			if !present || v.Literal != entry.Assertion.Literal {
				return nil, &UnifyError{Feature: entry.Name, Wanted: entry.Assertion, Got: v, Msg: "checklist value mismatch"}
			}
		default:
			if present && v.Literal == entry.Assertion.Literal {
				return nil, &UnifyError{Feature: entry.Name, Wanted: entry.Assertion, Got: v, Msg: "checklist value must differ"}
			}
		}
	}
	return out, nil
}

// buildPDict resolves param against src: a bare value is kept as-is, a
// *name reference is looked up in src.
func buildPDict(param rule.FParam, src rule.FeatureMap) rule.FeatureMap {
	if !param.HasParam {
		return src
	}
	out := make(rule.FeatureMap, len(param.Features))
	for k, v := range param.Features {
		if v.Kind == rule.FVRef {
			if sv, ok := src[v.Ref]; ok {
				out[k] = sv
			}
			continue
		}
		out[k] = v
	}
	return out
}
