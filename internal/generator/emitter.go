// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/qinhj5/autoapi/internal/openapi"
	"github.com/qinhj5/autoapi/internal/util"
	"github.com/qinhj5/autoapi/pkg/types"
)

// pathParamPattern matches a single path template parameter.
var pathParamPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// apiMethodName derives the generated method name for an operation:
// "{method}_{snake(operationId)}" unless the snake-cased operationId
// already starts with the method, falling back to the snake-cased path
// when no operationId is declared.
func apiMethodName(method string, op *types.Operation, path string) string {
	method = strings.ToLower(method)
	if op.OperationID != "" {
		snake := util.PascalToSnake(op.OperationID)
		if snake == method || strings.HasPrefix(snake, method+"_") {
			return snake
		}
		return method + "_" + snake
	}
	return method + "_" + util.PascalToSnake(path)
}

// convertPathParams rewrites each path template parameter to its
// snake_cased, keyword-escaped form so the emitted f-string
// interpolates the method's own argument names.
func convertPathParams(path string) string {
	return pathParamPattern.ReplaceAllStringFunc(path, func(m string) string {
		inner := m[1 : len(m)-1]
		return "{" + util.AvoidReserved(util.PascalToSnake(inner)) + "}"
	})
}

// kv pairs an original wire name with the Python identifier holding
// its value.
type kv struct {
	key   string
	value string
}

// renderGroup emits the dict assignment for one parameter group. When
// the group holds exactly one object or array parameter, a sample
// built from its schema is emitted as the fallback value so callers
// can invoke the method with no arguments.
func renderGroup(b *strings.Builder, dictName string, pairs []kv, schemas map[string]*types.Schema, resolver *openapi.Resolver) error {
	single := len(pairs) == 1
	var schema *types.Schema
	if single {
		schema = schemas[pairs[0].key]
	}

	if single && schema != nil && (schema.Type == "object" || schema.Type == "array") {
		sample, err := resolver.Example(schema)
		if err != nil {
			return err
		}
		name := pairs[0].value
		fmt.Fprintf(b, "        %s_sample = %s\n", name, pyLiteral(sample))
		fmt.Fprintf(b, "        %s = %s if %s else %s_sample\n", dictName, name, name, name)
		return nil
	}

	entries := make([]string, len(pairs))
	for i, p := range pairs {
		entries[i] = fmt.Sprintf("%q: %s", p.key, p.value)
	}
	fmt.Fprintf(b, "        %s = {%s}\n", dictName, strings.Join(entries, ", "))
	return nil
}

// renderAPIMethod emits one client method. The returned flag reports
// whether the method's annotations need typing.List. A schema
// resolution failure aborts only this method.
func renderAPIMethod(mo ModuleOperation, resolver *openapi.Resolver) (string, bool, error) {
	op := mo.Operation
	apiName := apiMethodName(mo.Method, op, mo.Path)
	uri := convertPathParams(mo.Path)

	summary := op.Summary
	if summary == "" {
		summary = "Null"
	}

	params := Process(op)

	type paramInfo struct {
		name       string
		annotation string
		desc       string
	}
	infos := make([]paramInfo, 0, len(params))
	var queryKV, headerKV, dataKV, jsonKV []kv
	querySchemas := map[string]*types.Schema{}
	jsonSchemas := map[string]*types.Schema{}
	usesList := false

	for _, p := range params {
		name := util.AvoidReserved(util.PascalToSnake(p.Name))
		annotation, needsList := paramAnnotation(p.Schema)
		if needsList {
			usesList = true
		}
		if !p.Required {
			annotation += " = None"
		}
		desc := p.Description
		if desc == "" {
			desc = "null"
		}
		infos = append(infos, paramInfo{name: name, annotation: annotation, desc: desc})

		// path parameters appear only in the signature and the uri
		// f-string, never in a request dict
		switch p.In {
		case "query":
			queryKV = append(queryKV, kv{p.Name, name})
			querySchemas[p.Name] = p.Schema
		case "header":
			headerKV = append(headerKV, kv{p.Name, name})
		case "formData":
			dataKV = append(dataKV, kv{p.Name, name})
		case "body", "":
			jsonKV = append(jsonKV, kv{p.Name, name})
			jsonSchemas[p.Name] = p.Schema
		}
	}

	var b strings.Builder

	sigParts := make([]string, len(infos))
	for i, info := range infos {
		sigParts[i] = info.name + ": " + info.annotation
	}
	signature := ""
	if len(sigParts) > 0 {
		signature = ", " + strings.Join(sigParts, ", ")
	}
	fmt.Fprintf(&b, "\n    def %s(self%s) -> Dict[str, Any]:\n", apiName, signature)

	b.WriteString("        \"\"\"\n")
	b.WriteString(wrappedString(summary, 8, false) + "\n")
	if len(infos) > 0 {
		b.WriteString("\n        Args:\n")
		for _, info := range infos {
			entry := fmt.Sprintf("%s (%s): %s", info.name, info.annotation, info.desc)
			b.WriteString(wrappedString(entry, 12, true) + "\n")
		}
	}
	b.WriteString("\n        Returns:\n")
	b.WriteString("            Dict[str, Any]: The response content of the request as a dictionary.\n")
	b.WriteString("        \"\"\"\n")

	var requestArgs []string
	if len(queryKV) > 0 {
		if err := renderGroup(&b, "params_dict", queryKV, querySchemas, resolver); err != nil {
			return "", false, err
		}
		requestArgs = append(requestArgs, "params=params_dict")
	}
	if len(headerKV) > 0 {
		if err := renderGroup(&b, "headers_dict", headerKV, nil, resolver); err != nil {
			return "", false, err
		}
		requestArgs = append(requestArgs, "headers=headers_dict")
	}
	if len(dataKV) > 0 {
		if err := renderGroup(&b, "data_dict", dataKV, nil, resolver); err != nil {
			return "", false, err
		}
		requestArgs = append(requestArgs, "data=data_dict")
	}
	if len(jsonKV) > 0 {
		if err := renderGroup(&b, "json_dict", jsonKV, jsonSchemas, resolver); err != nil {
			return "", false, err
		}
		requestArgs = append(requestArgs, "json=json_dict")
	}

	tail := ""
	if len(requestArgs) > 0 {
		tail = ", " + strings.Join(requestArgs, ", ")
	}
	fmt.Fprintf(&b, "        return self._send_request(uri=f%q, method=%q%s)\n",
		uri, strings.ToUpper(mo.Method), tail)

	return b.String(), usesList, nil
}

// RenderAPIClass emits the client class for one module. Operations
// whose schemas cannot be resolved are dropped from the class and
// reported as warnings; the returned slice holds the operations that
// made it into the class.
func RenderAPIClass(module string, ops []ModuleOperation, resolver *openapi.Resolver) (string, []ModuleOperation, []string) {
	var body strings.Builder
	usesList := false
	kept := make([]ModuleOperation, 0, len(ops))
	var warnings []string

	for _, mo := range ops {
		code, needsList, err := renderAPIMethod(mo, resolver)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s %s: %v",
				strings.ToUpper(mo.Method), mo.Path, err))
			continue
		}
		if needsList {
			usesList = true
		}
		body.WriteString(code)
		kept = append(kept, mo)
	}

	typingImport := "Dict, Any"
	if usesList {
		typingImport += ", List"
	}
	className := util.SnakeToPascal(module) + "API"

	var b strings.Builder
	b.WriteString("# -*- coding: utf-8 -*-\n")
	fmt.Fprintf(&b, "from typing import %s\n", typingImport)
	b.WriteString("from api.base_api import BaseAPI\n")
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "class %s(BaseAPI):\n", className)
	if body.Len() == 0 {
		b.WriteString("    pass\n")
	}
	b.WriteString(body.String())

	return b.String(), kept, warnings
}

// RenderFixture emits the module conftest exposing a package-scoped
// fixture that builds the module's API client from global settings.
func RenderFixture(module, packagePrefix, apiDir string) string {
	className := util.SnakeToPascal(module) + "API"
	fixtureName := module + "_api"

	segments := make([]string, 0, 4)
	for _, s := range []string{packagePrefix, apiDir, module, module + "_api"} {
		if s != "" {
			segments = append(segments, s)
		}
	}
	importPath := strings.Join(segments, ".")

	var b strings.Builder
	b.WriteString("# -*- coding: utf-8 -*-\n")
	b.WriteString("import pytest\n")
	b.WriteString("from config.conf import Global\n")
	fmt.Fprintf(&b, "from %s import %s\n", importPath, className)
	b.WriteString("\n\n")
	b.WriteString("@pytest.fixture(scope=\"package\")\n")
	fmt.Fprintf(&b, "def %s():\n", fixtureName)
	fmt.Fprintf(&b, "    return %s(base_url=Global.CONSTANTS.BASE_URL, headers=Global.CONSTANTS.HEADERS)\n", className)
	return b.String()
}

// RenderTestStub emits the skeleton test for one operation and returns
// the source together with the suggested file name. Only required
// parameters appear: each gets a single-value parametrize decorator
// and is forwarded to the client method.
func RenderTestStub(module string, mo ModuleOperation) (string, string) {
	apiName := apiMethodName(mo.Method, mo.Operation, mo.Path)
	fixtureName := module + "_api"
	className := util.SnakeToPascal("test_" + apiName)

	var required []string
	for _, p := range Process(mo.Operation) {
		if p.Required {
			required = append(required, util.AvoidReserved(util.PascalToSnake(p.Name)))
		}
	}

	var b strings.Builder
	b.WriteString("# -*- coding: utf-8 -*-\n")
	b.WriteString("import allure\n")
	b.WriteString("import pytest\n")
	b.WriteString("from utils.logger import logger\n")
	b.WriteString("from utils.common import set_allure_detail\n")
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "class %s:\n", className)
	b.WriteString("    @allure.severity(\"critical\")\n")
	b.WriteString("    @pytest.mark.critical\n")
	b.WriteString("    @pytest.mark.smoke\n")
	fmt.Fprintf(&b, "    @pytest.mark.%s\n", apiName)
	for _, name := range required {
		fmt.Fprintf(&b, "    @pytest.mark.parametrize(%q, [None])\n", name)
	}

	args := ""
	if len(required) > 0 {
		args = ", " + strings.Join(required, ", ")
	}
	fmt.Fprintf(&b, "    def test_%s(self, %s%s):\n", apiName, fixtureName, args)

	callArgs := make([]string, len(required))
	for i, name := range required {
		callArgs[i] = name + "=" + name
	}
	fmt.Fprintf(&b, "        res = %s.%s(%s)\n", fixtureName, apiName, strings.Join(callArgs, ", "))
	b.WriteString("        actual_code = res[\"status_code\"]\n")
	fmt.Fprintf(&b, "        logger.info(f\"%s status code: {actual_code}\")\n", apiName)
	b.WriteString("\n")
	b.WriteString("        expected_code = 200\n")
	b.WriteString("        assert actual_code == expected_code, set_allure_detail(f\"actual: {actual_code}, expected: {expected_code}\")\n")

	return b.String(), "test_" + apiName + ".py"
}
