// Copyright 2025 go-half Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/samber/lo"
)

type opKind int

const (
	arith opKind = iota
	relation
)

// operator is one row of the operator table.
type operator struct {
	Name   string // Method stem, e.g. "Sub".
	Const  string // Op or Rel constant in package half.
	Symbol string
	Kind   opKind
}

var operators = []operator{
	{Name: "Add", Const: "OpAdd", Symbol: "+", Kind: arith},
	{Name: "Sub", Const: "OpSub", Symbol: "-", Kind: arith},
	{Name: "Mul", Const: "OpMul", Symbol: "*", Kind: arith},
	{Name: "Div", Const: "OpDiv", Symbol: "/", Kind: arith},
	{Name: "Less", Const: "RelLess", Symbol: "<", Kind: relation},
	{Name: "Greater", Const: "RelGreater", Symbol: ">", Kind: relation},
	{Name: "Equal", Const: "RelEqual", Symbol: "==", Kind: relation},
	{Name: "NotEqual", Const: "RelNotEqual", Symbol: "!=", Kind: relation},
	{Name: "GreaterEqual", Const: "RelGreaterEqual", Symbol: ">=", Kind: relation},
	{Name: "LessEqual", Const: "RelLessEqual", Symbol: "<=", Kind: relation},
}

// family is an operand family: the type a Half meets and the promotion
// policy that resolves it. The Half family (empty Name) becomes methods.
type family struct {
	Name       string
	TypeParam  string
	Operand    string
	Promotion  string
	Result     string
	ResultNote string
}

var families = []family{
	{
		Promotion: "HalfPromotion()",
		Result:    "Half",
	},
	{
		Name:       "Int",
		TypeParam:  "I Integer",
		Operand:    "I",
		Promotion:  "IntPromotion[I]()",
		Result:     "Half",
		ResultNote: " as a Half",
	},
	{
		Name:       "Float",
		TypeParam:  "F Float",
		Operand:    "F",
		Promotion:  "FloatPromotion[F]()",
		Result:     "F",
		ResultNote: " in the precision of F",
	},
}

// Shim is one generated function.
type Shim struct {
	Name      string
	Doc       string
	Signature string
	Body      string
}

// buildShims expands the tables, family by family, operator by operator,
// Half-first before Half-second.
func buildShims() []Shim {
	return lo.FlatMap(families, func(f family, _ int) []Shim {
		return lo.FlatMap(operators, func(op operator, _ int) []Shim {
			return f.shims(op)
		})
	})
}

func (f family) shims(op operator) []Shim {
	ret, call, verb, note := f.Result, "Apply", "returns", f.ResultNote
	if op.Kind == relation {
		ret, call, verb, note = "bool", "Compare", "reports whether", ""
	}

	if f.Name == "" {
		return []Shim{{
			Name:      op.Name,
			Doc:       fmt.Sprintf("%s %s h %s o%s.", op.Name, verb, op.Symbol, note),
			Signature: fmt.Sprintf("func (h Half) %s(o Half) %s", op.Name, ret),
			Body:      fmt.Sprintf("%s(%s, %s, h, o)", call, f.Promotion, op.Const),
		}}
	}

	left := op.Name + f.Name
	right := f.Name + op.Name
	return []Shim{
		{
			Name:      left,
			Doc:       fmt.Sprintf("%s %s h %s x%s.", left, verb, op.Symbol, note),
			Signature: fmt.Sprintf("func %s[%s](h Half, x %s) %s", left, f.TypeParam, f.Operand, ret),
			Body:      fmt.Sprintf("%s(%s, %s, h, x)", call, f.Promotion, op.Const),
		},
		{
			Name:      right,
			Doc:       fmt.Sprintf("%s %s x %s h%s.", right, verb, op.Symbol, note),
			Signature: fmt.Sprintf("func %s[%s](x %s, h Half) %s", right, f.TypeParam, f.Operand, ret),
			Body:      fmt.Sprintf("%sRev(%s, %s, x, h)", call, f.Promotion, op.Const),
		},
	}
}
