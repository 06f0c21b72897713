package module

import (
	"fmt"
	"strings"
)

// Disassemble renders a human-readable dump of a method's instructions,
// one line per instruction with nested blocks indented beneath their
// owning `if`/`while`/`try`. It is diagnostic tooling only, used by the
// `disassemble` CLI subcommand; it does not participate in execution.
func Disassemble(method *Method) string {
	var sb strings.Builder
	name := method.Name
	if method.DeclaringClass != nil {
		name = method.DeclaringClass.QualifiedName() + "." + method.Name
	}
	fmt.Fprintf(&sb, "== %s ==\n", name)
	if method.Native != nil {
		fmt.Fprintf(&sb, "  <native>\n")
		return sb.String()
	}
	disassembleBlock(&sb, method.Instructions, 1)
	return sb.String()
}

func disassembleBlock(sb *strings.Builder, instrs []Instruction, depth int) {
	indent := strings.Repeat("  ", depth)
	for i, inst := range instrs {
		fmt.Fprintf(sb, "%s[%04d] %s\n", indent, i, disassembleOne(inst, depth))
		switch inst.Op {
		case OpIf:
			fmt.Fprintf(sb, "%sthen:\n", indent)
			disassembleBlock(sb, inst.Then, depth+1)
			if len(inst.Else) > 0 {
				fmt.Fprintf(sb, "%selse:\n", indent)
				disassembleBlock(sb, inst.Else, depth+1)
			}
		case OpWhile:
			fmt.Fprintf(sb, "%sbody:\n", indent)
			disassembleBlock(sb, inst.Body, depth+1)
		case OpTry:
			fmt.Fprintf(sb, "%stry:\n", indent)
			disassembleBlock(sb, inst.TryBlock, depth+1)
			for _, c := range inst.Catches {
				label := c.ExceptionType
				if label == "" {
					label = "any"
				}
				fmt.Fprintf(sb, "%scatch %s:\n", indent, label)
				disassembleBlock(sb, c.Block, depth+1)
			}
			if len(inst.Finally) > 0 {
				fmt.Fprintf(sb, "%sfinally:\n", indent)
				disassembleBlock(sb, inst.Finally, depth+1)
			}
		}
	}
}

func disassembleOne(inst Instruction, depth int) string {
	switch inst.Op {
	case OpLdStr:
		return fmt.Sprintf("ldstr %q", inst.Str)
	case OpLdc:
		return fmt.Sprintf("ldc %s:%s", ldcValue(inst), inst.TypeName)
	case OpLdI4, OpLdI8:
		return fmt.Sprintf("%s %d", inst.Op, inst.IntVal)
	case OpLdR4, OpLdR8:
		return fmt.Sprintf("%s %g", inst.Op, inst.FloatVal)
	case OpLdLoc, OpStLoc, OpStArg:
		return fmt.Sprintf("%s %s", inst.Op, inst.Str)
	case OpLdArg:
		if inst.HasIndex {
			return fmt.Sprintf("ldarg #%d", inst.Index)
		}
		return fmt.Sprintf("ldarg %s", inst.Str)
	case OpLdFld, OpStFld:
		return fmt.Sprintf("%s %s", inst.Op, inst.Field.Name)
	case OpLdSFld, OpStSFld:
		return fmt.Sprintf("%s %s.%s", inst.Op, inst.Field.DeclaringType, inst.Field.Name)
	case OpNewObj, OpNewArr, OpCastClass, OpIsInst:
		return fmt.Sprintf("%s %s", inst.Op, inst.TypeName)
	case OpCall, OpCallVirt:
		return fmt.Sprintf("%s %s", inst.Op, callTargetString(inst.Method))
	case OpIf:
		return fmt.Sprintf("if %s", conditionString(inst.Condition))
	case OpWhile:
		return fmt.Sprintf("while %s", conditionString(inst.Condition))
	case OpBr, OpBrTrue, OpBrFalse, OpBeq, OpBne, OpBgt, OpBge, OpBlt, OpBle:
		if inst.HasIndex {
			return fmt.Sprintf("%s #%d", inst.Op, inst.Index)
		}
		return fmt.Sprintf("%s %s", inst.Op, inst.Str)
	default:
		return inst.Op.String()
	}
}

func ldcValue(inst Instruction) string {
	switch {
	case inst.Str != "":
		return inst.Str
	case inst.FloatVal != 0:
		return fmt.Sprintf("%g", inst.FloatVal)
	default:
		return fmt.Sprintf("%d", inst.IntVal)
	}
}

func callTargetString(ct CallTarget) string {
	params := make([]string, len(ct.ParameterTypes))
	for i, p := range ct.ParameterTypes {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s.%s(%s)->%s", ct.DeclaringType, ct.Name, strings.Join(params, ","), ct.ReturnType.String())
}

func conditionString(c *Condition) string {
	if c == nil {
		return "<empty>"
	}
	switch c.Kind {
	case ConditionEmpty:
		return "<empty>"
	case ConditionBinary:
		return fmt.Sprintf("<binary %s>", c.Op)
	case ConditionExpression:
		return "<expr>"
	case ConditionBlock:
		return "<block>"
	default:
		return "<unknown>"
	}
}
