package model

// Catalogo agrupa los tres datasets dimensionales cargados por el
// repositorio. El simulador lo consume en modo solo-lectura.
type Catalogo struct {
	Productos   []Producto
	Proveedores []Proveedor
	Categorias  []Categoria

	categoriasPorID map[int64]Categoria
}

// NuevoCatalogo construye el catálogo y sus índices de búsqueda.
func NuevoCatalogo(productos []Producto, proveedores []Proveedor, categorias []Categoria) *Catalogo {
	idx := make(map[int64]Categoria, len(categorias))
	for _, c := range categorias {
		idx[c.ID] = c
	}
	return &Catalogo{
		Productos:       productos,
		Proveedores:     proveedores,
		Categorias:      categorias,
		categoriasPorID: idx,
	}
}

// CategoriaPorID devuelve la categoría indexada por id.
func (c *Catalogo) CategoriaPorID(id int64) (Categoria, bool) {
	cat, ok := c.categoriasPorID[id]
	return cat, ok
}
