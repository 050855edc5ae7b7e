package engine

import (
	"strconv"
	"strings"

	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/operator"
)

// parseOperator resolves one of spec.md §6's textual operator names —
// the thin string-keyed parser spec.md §9 confines to this one API
// boundary — into an operator.Operator. Parameterized names carry their
// argument after a colon (fold-subtree:<idx>, attract-centroid:<step>);
// every other recognized name takes no argument.
func parseOperator(opName string) (operator.Operator, *EngineError) {
	name, param, _ := strings.Cut(opName, ":")

	switch name {
	case "select-all":
		return operator.SelectAll(), nil
	case "deselect-all":
		return operator.DeselectAll(), nil
	case "expand-selection":
		return operator.ExpandSelection(), nil
	case "expand-selection-full":
		return operator.ExpandSelectionFull(), nil
	case "contract-selection":
		return operator.ContractSelection(), nil
	case "show":
		return operator.Show(), nil
	case "hide":
		return operator.Hide(), nil
	case "fold-subtree":
		idx, err := strconv.Atoi(param)
		if err != nil {
			return nil, newErr(InvalidArgument, "apply_operator", err)
		}
		return operator.FoldSubtreeOp(idx), nil
	case "unfold-subtree":
		idx, err := strconv.Atoi(param)
		if err != nil {
			return nil, newErr(InvalidArgument, "apply_operator", err)
		}
		return operator.UnfoldSubtreeOp(idx), nil
	case "attract-centroid":
		step, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return nil, newErr(InvalidArgument, "apply_operator", err)
		}
		return operator.AttractToCentroid(step), nil
	case "prune-depth":
		d, err := strconv.Atoi(param)
		if err != nil {
			return nil, newErr(InvalidArgument, "apply_operator", err)
		}
		return operator.PruneByDepth(d), nil
	default:
		return nil, newErr(InvalidArgument, "apply_operator", nil)
	}
}

// ApplyOperator parses opName (spec.md §6's "apply_operator(id, op_name,
// args…)") and applies the resulting operator to psID, recording it on
// that point set's undo history.
func (e *Engine) ApplyOperator(psID, opName string) (history.Record, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return history.Record{}, e.logErr(eerr)
	}
	op, eerr := parseOperator(opName)
	if eerr != nil {
		return history.Record{}, e.logErr(eerr)
	}
	rec, err := op.Apply(pe.ps)
	if err != nil {
		return history.Record{}, e.logErr(newErr(InvalidArgument, "apply_operator", err))
	}
	pe.history.Push(rec)
	if pe.index != nil {
		pe.index.NotifyInsert()
	}
	return rec, nil
}
