/*
Package notatimer provides a minimal cooperative run-until-told-to-stop
primitive: a Runner repeatedly invokes a caller-supplied step function until
the function returns false or an external caller requests a stop.

Despite the name, it is not a timer. The Runner measures nothing and waits on
nothing; the loop cadence is entirely determined by how fast the step function
returns. Any pacing belongs inside the step function itself.

# Concept

A Runner has exactly one loop at a time. Run executes it on the calling
goroutine and blocks; RunAsync hands it to a background goroutine and returns
once the loop has verifiably started, so IsRunning is already true when the
caller regains control. Stop is cooperative: it never interrupts an in-flight
step, only prevents the next one.

# Usage

	r := notatimer.NewRunner()

	count := 100
	if err := r.Run(func() bool {
		count--
		return count > 0
	}); err != nil {
		log.Fatal(err)
	}

	// Detached, with a drained teardown:
	if err := r.RunAsync(step); err != nil {
		log.Fatal(err)
	}
	defer r.Close() // Stop + join the background loop

Step middlewares (CountSteps, LimitSteps, LogSteps) compose observability and
bounds onto a step function without touching the Runner itself.
*/
package notatimer
