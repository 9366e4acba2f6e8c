/*
Package tracing provides lightweight request tracing for the command surface.

Every HTTP request gets a span. The trace ID is taken from the X-Trace-ID
header when the caller sends one and generated otherwise, then echoed back
on the response so the desktop shell can correlate its logs with ours.
Completed spans are logged through zap by a background collector.

# Usage

	tracer := tracing.New("backend", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	// Inside a handler
	span, ctx := tracer.StartSpan(ctx, "extract_zip")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
