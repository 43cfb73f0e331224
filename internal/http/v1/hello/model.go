package hello

// Data is the greeting payload.
type Data struct {
	Message string `json:"message" cbor:"message" example:"Hello World, React + Webpack + TypeScript 🚀"`
	Markup  string `json:"markup"  cbor:"markup"  example:"<h1>Hello World, React + Webpack + TypeScript 🚀</h1>"`
}
