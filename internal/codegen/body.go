package codegen

import (
	"strings"

	"github.com/lithammer/dedent"
)

// Body snippets for each verb. Placeholders are substituted per route; the
// layout inside each snippet is part of the generated-file contract and is
// asserted byte-for-byte by the tests.
var (
	listGetBody = pySnippet(`
		{plural} = CONNECT.{plural}.get_multiple(db, skip=0, limit=10)

		return {response_model}(
		    code=status.{status},
		    data=[{singular}.model_dump() for {singular} in {plural}],
		)`)

	singleGetBody = pySnippet(`
		{singular} = CONNECT.{plural}.get(db, id)

		return {response_model}(
		    code=status.{status},
		    data={singular}.model_dump(),
		)`)

	createBody = pySnippet(`
		exists = CONNECT.{plural}.get(db, {singular}.id)

		if exists:
		    raise HTTPException(
		        status_code=status.HTTP_400_BAD_REQUEST,
		        detail="{title} already exists.",
		    )

		{singular} = CONNECT.{plural}.create(db, {singular}.model_dump())

		return {response_model}(
		    code=status.{status},
		    data={title}ID(id={singular}.id).model_dump(),
		)`)

	updateBody = pySnippet(`
		exists = CONNECT.{plural}.update(db, id, {singular}.model_dump())

		if not exists:
		    raise HTTPException(
		        status_code=status.HTTP_400_BAD_REQUEST,
		        detail="{title} does not exist.",
		    )

		update = CONNECT.{plural}.get(db, id)

		return {response_model}(
		    code=status.{status},
		    data={title}ID(id=update.id).model_dump(),
		)`)

	deleteBody = pySnippet(`
		exists = CONNECT.{plural}.delete(db, id)

		if not exists:
		    raise HTTPException(
		        status_code=status.HTTP_400_BAD_REQUEST,
		        detail="{title} does not exist.",
		    )

		return SuccessMsgResponse(
		    code=status.{status},
		    message="{title} deleted.",
		)`)
)

// bodyRenderers is the verb-indexed dispatch table for handler bodies.
var bodyRenderers = map[Method]func(Route, Name) string{
	MethodGet: func(r Route, name Name) string {
		if r.Multi {
			return fillBody(listGetBody, r, name)
		}
		return fillBody(singleGetBody, r, name)
	},
	MethodPost: func(r Route, name Name) string {
		return fillBody(createBody, r, name)
	},
	MethodPut: func(r Route, name Name) string {
		return fillBody(updateBody, r, name)
	},
	MethodPatch: func(r Route, name Name) string {
		return fillBody(updateBody, r, name)
	},
	MethodDelete: func(r Route, name Name) string {
		return fillBody(deleteBody, r, name)
	},
}

func (r Route) body(name Name) string {
	render, ok := bodyRenderers[r.Method]
	if !ok {
		return "pass"
	}
	return render(r, name)
}

func fillBody(template string, r Route, name Name) string {
	return strings.NewReplacer(
		"{singular}", name.Singular,
		"{plural}", name.Plural,
		"{title}", Title(name.Singular),
		"{response_model}", r.ResponseModel,
		"{status}", statusNames[r.StatusCode],
	).Replace(template)
}

// pySnippet strips the Go source margin from a template literal.
func pySnippet(s string) string {
	return strings.Trim(dedent.Dedent(s), "\n")
}
