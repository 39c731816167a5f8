package middleware

import "github.com/danielgtaylor/huma/v2"

// Container накапливает middleware для очередного handler'а.
// GetAllAndClear отдаёт собранный набор и очищает контейнер,
// чтобы следующий handler собирал свой набор с нуля.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.middlewares
	c.middlewares = nil
	return out
}
