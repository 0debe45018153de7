/*
Package runner implements the execution loop and I/O orchestration for an intake conversation.

It acts as the bridge between the conversation engine and the outside world.
The runner owns the engine: reveal callbacks delivered through a reveal.Loop,
lines typed by the user and rendering all happen on the goroutine that calls Run.
After every event it diffs the engine snapshot against the last one it rendered
and hands the change to an IOHandler.

# Key Components

  - Runner: The main loop. It starts the conversation, routes input and shows the summary.
  - IOHandler: Decouples how the conversation is presented (terminal, JSON-Lines).
  - TextHandler: Interactive terminal output with a typing effect.
  - JSONHandler: One JSON event per line, for other programs.
  - InputInterceptor: Middleware applied to each answer, such as OptionResolver.

# Usage

	loop := reveal.NewLoop(64)
	defer loop.Close()

	eng, err := intake.New(script.PrinterRequest(),
		intake.WithScheduler(reveal.NewTypewriter(loop, 30*time.Millisecond)),
	)
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(
		runner.WithLoop(loop),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)
	if err := r.Run(ctx, eng); err != nil {
		log.Fatal(err)
	}
*/
package runner
