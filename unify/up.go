package unify

import "github.com/tomitaglr/glrnlp/rule"

// UnifyUp merges src into dst, filtered through param, per spec.md
// §4.5. Grounded directly on GLRParser/parser.py's unify_up(self, dst,
// param, src).
func UnifyUp(dst rule.FeatureMap, param rule.FParam, src rule.FeatureMap) (rule.FeatureMap, error) {
	if !param.HasParam {
		return mergeAll(dst, src)
	}

	mentioned := make(map[string]bool, len(param.Features))
	checks := make(map[string]rule.FeatureValue)
	copies := make(map[string]string) // dstKey -> srcKey

	for k, v := range param.Features {
		mentioned[k] = true
		switch v.Kind {
		case rule.FVLiteral, rule.FVBool:
			if _, ok := src[k]; ok {
				checks[k] = v
			}
		case rule.FVRef:
			if param.Kind != rule.ParamWithoutMinus {
				copies[k] = v.Ref
			}
		default:
			if param.Kind != rule.ParamWithoutMinus {
				copies[k] = k
			}
		}
	}

	if param.Kind == rule.ParamWithPlus || param.Kind == rule.ParamWithoutMinus {
		for k := range src {
			if !mentioned[k] {
				copies[k] = k
			}
		}
	}

	for k, want := range checks {
		got, ok := src[k]
		if !ok || !got.Equal(want) {
			return nil, &UnifyError{Feature: k, Wanted: want, Got: got, Msg: "checked feature does not match"}
		}
	}

	out := dst.Clone()
	if out == nil {
		out = rule.FeatureMap{}
	}
	for dstKey, srcKey := range copies {
		v, ok := src[srcKey]
		if !ok {
			continue
		}
		if existing, has := out[dstKey]; has && !existing.Equal(v) {
			return nil, &UnifyError{Feature: dstKey, Wanted: existing, Got: v, Msg: "conflicting feature value on copy"}
		}
		out[dstKey] = v
	}
	return out, nil
}

func mergeAll(dst, src rule.FeatureMap) (rule.FeatureMap, error) {
	out := dst.Clone()
	if out == nil {
		out = rule.FeatureMap{}
	}
	for k, v := range src {
		if existing, ok := out[k]; ok && !existing.Equal(v) {
			return nil, &UnifyError{Feature: k, Wanted: existing, Got: v, Msg: "conflicting feature value"}
		}
		out[k] = v
	}
	return out, nil
}
