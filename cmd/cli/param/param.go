package param

type BodyOpts struct {
	Body string `arg:"-d,--body" help:"request body to send"`
	File string `arg:"-f,--file" help:"read request body from file, - for stdin"`
}

type Run struct {
	BodyOpts
}

type Serve struct {
	Listen string `arg:"-l,--listen,env:ECHO_LISTEN" help:"address to listen on"`
}

type Invoke struct {
	Function string `arg:"-n,--function,env:ECHO_FUNCTION_NAME" help:"name or arn of the deployed function"`
	BodyOpts
}

type Post struct {
	Url  string `arg:"positional,required" help:"endpoint fronting the function"`
	Sign bool   `arg:"-s,--sign" help:"sigv4 sign the request for execute-api"`
	BodyOpts
}

type Config struct{}
