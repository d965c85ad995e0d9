package main

type ServeCmd struct {
	HTTP string `help:"Serve the REST API over HTTP on this address instead of stdio MCP." placeholder:"ADDR"`
	SSE  string `help:"Serve MCP over SSE on this address instead of stdio." placeholder:"ADDR"`
}

func (c *ServeCmd) Run(ctx *cmdContext) error {
	switch {
	case c.HTTP != "":
		ctx.console.Printf("Starting REST server on %v...\n", c.HTTP)
		return ctx.server.RunHTTP(c.HTTP)

	case c.SSE != "":
		ctx.console.Printf("Starting MCP SSE server on %v...\n", c.SSE)
		return ctx.server.ServeSSE(c.SSE)

	default:
		// stdout belongs to the stdio transport, so no console output here.
		return ctx.server.ServeStdio()
	}
}
