package codegen

import (
	"reflect"
	"testing"
)

func TestNewRoute_Derivations(t *testing.T) {
	r := NewRoute(RouteSpec{
		Name:       "product",
		Method:     MethodPost,
		Path:       "",
		StatusCode: 201,
		Auth:       true,
	})

	if r.FuncName != "post_product" {
		t.Fatalf("unexpected func name: %s", r.FuncName)
	}
	if r.ResponseModel != "CreateProductResponse" {
		t.Fatalf("unexpected response model: %s", r.ResponseModel)
	}
	if r.SchemaModel != "ProductCreate" {
		t.Fatalf("unexpected schema model: %s", r.SchemaModel)
	}
	if !reflect.DeepEqual(r.ResponseCodes, []int{400, 401, 403}) {
		t.Fatalf("unexpected response codes: %v", r.ResponseCodes)
	}

	wantParams := []Param{
		{"product", "ProductCreate"},
		{"db", "DB_DEPEND"},
		{"current_user", "ACTIVE_USER_DEPEND"},
	}
	if !reflect.DeepEqual(r.Parameters, wantParams) {
		t.Fatalf("unexpected parameters: %v", r.Parameters)
	}
}

func TestNewRoute_DeleteHasNoModels(t *testing.T) {
	r := NewRoute(RouteSpec{
		Name:       "product",
		Method:     MethodDelete,
		Path:       "/{id}",
		StatusCode: 202,
		Auth:       true,
	})

	if r.ResponseModel != "" || r.SchemaModel != "" {
		t.Fatalf("delete routes derive no models: %q / %q", r.ResponseModel, r.SchemaModel)
	}

	wantParams := []Param{
		{"id", "int"},
		{"db", "DB_DEPEND"},
		{"current_user", "ACTIVE_USER_DEPEND"},
	}
	if !reflect.DeepEqual(r.Parameters, wantParams) {
		t.Fatalf("unexpected parameters: %v", r.Parameters)
	}
}

func TestNewRoute_NoAuth(t *testing.T) {
	r := NewRoute(RouteSpec{
		Name:       "product",
		Method:     MethodGet,
		Path:       "/{id}",
		StatusCode: 200,
	})

	if len(r.ResponseCodes) != 0 {
		t.Fatalf("unauthenticated GET derives no extra codes: %v", r.ResponseCodes)
	}
	wantParams := []Param{
		{"id", "int"},
		{"db", "DB_DEPEND"},
	}
	if !reflect.DeepEqual(r.Parameters, wantParams) {
		t.Fatalf("unexpected parameters: %v", r.Parameters)
	}
}

func TestNewRoute_ExplicitUnion(t *testing.T) {
	r := NewRoute(RouteSpec{
		Name:          "product",
		Method:        MethodGet,
		Path:          "/{id}",
		StatusCode:    200,
		Auth:          true,
		ResponseCodes: []int{400, 401},
		Parameters:    []Param{{"id", "int"}, {"verbose", "bool"}},
	})

	if !reflect.DeepEqual(r.ResponseCodes, []int{400, 401, 403}) {
		t.Fatalf("explicit codes must union with defaults: %v", r.ResponseCodes)
	}

	wantParams := []Param{
		{"id", "int"},
		{"verbose", "bool"},
		{"db", "DB_DEPEND"},
		{"current_user", "ACTIVE_USER_DEPEND"},
	}
	if !reflect.DeepEqual(r.Parameters, wantParams) {
		t.Fatalf("explicit parameters must stay first: %v", r.Parameters)
	}
}

const wantSingleGet = `@router.get(
    "/{id}",
    status_code=status.HTTP_200_OK,
    responses=get_response_models([401, 403]),
    response_model=GetProductResponse,
)
async def get_product(id: int, db: DB_DEPEND, current_user: ACTIVE_USER_DEPEND):
    product = CONNECT.products.get(db, id)

    return GetProductResponse(
        code=status.HTTP_200_OK,
        data=product.model_dump(),
    )`

func TestRender_SingleGet(t *testing.T) {
	name := Name{Singular: "product", Plural: "products"}
	routes := RouteSet(name)

	got := routes[1].Route.Render(name)
	if got != wantSingleGet {
		t.Fatalf("single-GET block mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, wantSingleGet)
	}
}

const wantDelete = `@router.delete(
    "/{id}",
    status_code=status.HTTP_202_ACCEPTED,
    responses=get_response_models([400, 401, 403]),
    response_model=None,
)
async def delete_product(id: int, db: DB_DEPEND, current_user: ACTIVE_USER_DEPEND):
    exists = CONNECT.products.delete(db, id)

    if not exists:
        raise HTTPException(
            status_code=status.HTTP_400_BAD_REQUEST,
            detail="Product does not exist.",
        )

    return SuccessMsgResponse(
        code=status.HTTP_202_ACCEPTED,
        message="Product deleted.",
    )`

func TestRender_Delete(t *testing.T) {
	name := Name{Singular: "product", Plural: "products"}
	routes := RouteSet(name)

	got := routes[4].Route.Render(name)
	if got != wantDelete {
		t.Fatalf("delete block mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, wantDelete)
	}
}

func TestResponseClass(t *testing.T) {
	name := Name{Singular: "order", Plural: "orders"}
	routes := RouteSet(name)

	want := map[string]string{
		"r1": "class GetOrdersResponse(SuccessResponse[list[Order]]):\n" +
			"    \"\"\"A response for retrieving a list of orders.\"\"\"\n" +
			"    pass",
		"r2": "class GetOrderResponse(SuccessResponse[Order]):\n" +
			"    \"\"\"A response for retrieving an order.\"\"\"\n" +
			"    pass",
		"c": "class CreateOrderResponse(SuccessResponse[OrderID]):\n" +
			"    \"\"\"A response for creating an order.\"\"\"\n" +
			"    pass",
		"u": "class UpdateOrderResponse(SuccessResponse[OrderID]):\n" +
			"    \"\"\"A response for updating an order.\"\"\"\n" +
			"    pass",
		"d": "",
	}

	for _, cr := range routes {
		if got := cr.Route.ResponseClass(name); got != want[cr.Key] {
			t.Fatalf("response class mismatch for %s:\n--- got ---\n%s\n--- want ---\n%s", cr.Key, got, want[cr.Key])
		}
	}
}
