// Package moduleio is a thin convenience loader that decodes a JSON
// rendering of a Module into the in-memory values internal/module and
// internal/vmcore operate on. It does not implement a textual IR, a
// lexer/parser, or any FOB binary container reader; it exists only so
// cmd/objectir and tests have something to point at a file without
// hand-building a *module.Module in Go.
package moduleio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
)

// LoadFile reads and decodes the JSON module at path.
func LoadFile(path string) (*module.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses JSON module bytes into a *module.Module, ready to hand to
// vmcore.New.
func Decode(data []byte) (*module.Module, error) {
	var doc moduleDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse module JSON: %w", err)
	}
	classes := make([]*module.Class, len(doc.Classes))
	for i, c := range doc.Classes {
		class, err := c.toClass()
		if err != nil {
			return nil, fmt.Errorf("class %d (%s): %w", i, c.Name, err)
		}
		classes[i] = class
	}
	return module.NewModule(doc.Name, doc.Version, classes), nil
}

// moduleDoc mirrors module.Module's JSON shape.
type moduleDoc struct {
	Name    string     `json:"name"`
	Version string     `json:"version"`
	Classes []classDoc `json:"classes"`
}

type classDoc struct {
	Name       string      `json:"name"`
	Namespace  string      `json:"namespace"`
	Base       string      `json:"base"`
	Interfaces []string    `json:"interfaces"`
	Abstract   bool        `json:"abstract"`
	Sealed     bool        `json:"sealed"`
	Fields     []fieldDoc  `json:"fields"`
	Methods    []methodDoc `json:"methods"`
}

func (c classDoc) toClass() (*module.Class, error) {
	fields := make([]module.Field, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = f.toField()
	}
	methods := make([]module.Method, len(c.Methods))
	for i, m := range c.Methods {
		method, err := m.toMethod()
		if err != nil {
			return nil, fmt.Errorf("method %d (%s): %w", i, m.Name, err)
		}
		methods[i] = method
	}
	return &module.Class{
		Name:       c.Name,
		Namespace:  c.Namespace,
		BaseName:   c.Base,
		Interfaces: c.Interfaces,
		Abstract:   c.Abstract,
		Sealed:     c.Sealed,
		Fields:     fields,
		Methods:    methods,
	}, nil
}

type fieldDoc struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Static   bool   `json:"static"`
	ReadOnly bool   `json:"readonly"`
	Access   string `json:"access"`
}

func (f fieldDoc) toField() module.Field {
	access := module.AccessPublic
	if f.Access != "" {
		access = module.Access(f.Access)
	}
	return module.Field{
		Name:     f.Name,
		Type:     module.ParseTypeReference(f.Type),
		Static:   f.Static,
		ReadOnly: f.ReadOnly,
		Access:   access,
	}
}

type paramDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (p paramDoc) toParameter() module.Parameter {
	return module.Parameter{Name: p.Name, Type: module.ParseTypeReference(p.Type)}
}

func (p paramDoc) toLocal() module.LocalVariable {
	return module.LocalVariable{Name: p.Name, Type: module.ParseTypeReference(p.Type)}
}

type methodDoc struct {
	Name         string           `json:"name"`
	ReturnType   string           `json:"returnType"`
	Static       bool             `json:"static"`
	Virtual      bool             `json:"virtual"`
	Override     bool             `json:"override"`
	Abstract     bool             `json:"abstract"`
	Constructor  bool             `json:"constructor"`
	Parameters   []paramDoc       `json:"parameters"`
	Locals       []paramDoc       `json:"locals"`
	Instructions []instructionDoc `json:"instructions"`
	Labels       map[string]int   `json:"labels"`
}

func (m methodDoc) toMethod() (module.Method, error) {
	params := make([]module.Parameter, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p.toParameter()
	}
	locals := make([]module.LocalVariable, len(m.Locals))
	for i, l := range m.Locals {
		locals[i] = l.toLocal()
	}
	instrs, err := toInstructions(m.Instructions)
	if err != nil {
		return module.Method{}, err
	}
	return module.Method{
		Name:         m.Name,
		ReturnType:   module.ParseTypeReference(m.ReturnType),
		Static:       m.Static,
		Virtual:      m.Virtual,
		Override:     m.Override,
		Abstract:     m.Abstract,
		Constructor:  m.Constructor,
		Parameters:   params,
		Locals:       locals,
		Instructions: instrs,
		LabelMap:     m.Labels,
	}, nil
}

type fieldRefDoc struct {
	DeclaringType string `json:"declaringType"`
	Name          string `json:"name"`
}

func (f fieldRefDoc) toFieldRef() module.FieldRef {
	return module.FieldRef{DeclaringType: f.DeclaringType, Name: f.Name}
}

type callTargetDoc struct {
	DeclaringType  string   `json:"declaringType"`
	Name           string   `json:"name"`
	ReturnType     string   `json:"returnType"`
	ParameterTypes []string `json:"parameterTypes"`
}

func (c callTargetDoc) toCallTarget() module.CallTarget {
	params := make([]module.TypeReference, len(c.ParameterTypes))
	for i, p := range c.ParameterTypes {
		params[i] = module.ParseTypeReference(p)
	}
	return module.CallTarget{
		DeclaringType:  c.DeclaringType,
		Name:           c.Name,
		ReturnType:     module.ParseTypeReference(c.ReturnType),
		ParameterTypes: params,
	}
}

type conditionDoc struct {
	Kind  string           `json:"kind"`
	Op    string           `json:"op"`
	Left  []instructionDoc `json:"left"`
	Right []instructionDoc `json:"right"`
	Expr  []instructionDoc `json:"expr"`
	Block []instructionDoc `json:"block"`
}

func (c *conditionDoc) toCondition() (*module.Condition, error) {
	if c == nil {
		return nil, nil
	}
	kind := module.ConditionKind(c.Kind)
	if kind == "" {
		kind = module.ConditionEmpty
	}
	left, err := toInstructions(c.Left)
	if err != nil {
		return nil, err
	}
	right, err := toInstructions(c.Right)
	if err != nil {
		return nil, err
	}
	expr, err := toInstructions(c.Expr)
	if err != nil {
		return nil, err
	}
	block, err := toInstructions(c.Block)
	if err != nil {
		return nil, err
	}
	return &module.Condition{Kind: kind, Op: c.Op, Left: left, Right: right, Expr: expr, Block: block}, nil
}

type catchClauseDoc struct {
	ExceptionType string           `json:"exceptionType"`
	Block         []instructionDoc `json:"block"`
}

func (c catchClauseDoc) toCatchClause() (module.CatchClause, error) {
	block, err := toInstructions(c.Block)
	if err != nil {
		return module.CatchClause{}, err
	}
	return module.CatchClause{ExceptionType: c.ExceptionType, Block: block}, nil
}

// instructionDoc mirrors module.Instruction. op is the canonical lowercase
// spelling from opCodeNames (module.OpCode.String()); operand fields are
// named after the field they populate on Instruction.
type instructionDoc struct {
	Op       string  `json:"op"`
	Str      string  `json:"str"`
	HasIndex bool    `json:"hasIndex"`
	Index    int     `json:"index"`
	IntVal   int64   `json:"intVal"`
	FloatVal float64 `json:"floatVal"`
	TypeName string  `json:"typeName"`

	Field  *fieldRefDoc   `json:"field"`
	Method *callTargetDoc `json:"method"`

	Condition *conditionDoc    `json:"condition"`
	Then      []instructionDoc `json:"then"`
	Else      []instructionDoc `json:"else"`
	Body      []instructionDoc `json:"body"`
	Try       []instructionDoc `json:"try"`
	Catches   []catchClauseDoc `json:"catches"`
	Finally   []instructionDoc `json:"finally"`
}

func toInstructions(docs []instructionDoc) ([]module.Instruction, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]module.Instruction, len(docs))
	for i, d := range docs {
		inst, err := d.toInstruction()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		out[i] = inst
	}
	return out, nil
}

func (d instructionDoc) toInstruction() (module.Instruction, error) {
	op, ok := parseOpCode(d.Op)
	if !ok {
		return module.Instruction{}, fmt.Errorf("unrecognized opcode %q", d.Op)
	}

	var field module.FieldRef
	if d.Field != nil {
		field = d.Field.toFieldRef()
	}
	var method module.CallTarget
	if d.Method != nil {
		method = d.Method.toCallTarget()
	}
	condition, err := d.Condition.toCondition()
	if err != nil {
		return module.Instruction{}, err
	}
	then, err := toInstructions(d.Then)
	if err != nil {
		return module.Instruction{}, err
	}
	els, err := toInstructions(d.Else)
	if err != nil {
		return module.Instruction{}, err
	}
	body, err := toInstructions(d.Body)
	if err != nil {
		return module.Instruction{}, err
	}
	tryBlock, err := toInstructions(d.Try)
	if err != nil {
		return module.Instruction{}, err
	}
	finally, err := toInstructions(d.Finally)
	if err != nil {
		return module.Instruction{}, err
	}
	catches := make([]module.CatchClause, len(d.Catches))
	for i, c := range d.Catches {
		clause, err := c.toCatchClause()
		if err != nil {
			return module.Instruction{}, fmt.Errorf("catch %d: %w", i, err)
		}
		catches[i] = clause
	}

	return module.Instruction{
		Op:        op,
		Str:       d.Str,
		HasIndex:  d.HasIndex,
		Index:     d.Index,
		IntVal:    d.IntVal,
		FloatVal:  d.FloatVal,
		TypeName:  module.NormalizeTypeName(d.TypeName),
		Field:     field,
		Method:    method,
		Condition: condition,
		Then:      then,
		Else:      els,
		Body:      body,
		TryBlock:  tryBlock,
		Catches:   catches,
		Finally:   finally,
	}, nil
}
