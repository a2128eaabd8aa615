package entity

// AppState es la raíz agregada: el snapshot completo en memoria de clientes,
// productos, ventas y metas. Se serializa entero como un único blob JSON.
//
// Invariantes de orden: Customers, Products y Goals conservan el orden de
// inserción (append al final); Sales se mantiene de más reciente a más
// antigua (las ventas nuevas se insertan al frente).
//
// No se valida integridad referencial: una venta puede referenciar un
// producto o cliente inexistente sin error (los nombres denormalizados
// existen precisamente para sobrevivir a eso).
type AppState struct {
	Customers []Customer `json:"customers"`
	Products  []Product  `json:"products"`
	Sales     []Sale     `json:"sales"`
	Goals     []Goal     `json:"goals"`
}
