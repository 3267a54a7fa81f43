// Package battlesearch finds every match a player took part in across
// trees of Pokémon Showdown battle logs.
//
// Battle logs are JSON documents, one per match, stored as
// <room>.log.json under dated directories. A search walks one or more root
// directories, hands every file to a fixed pool of workers by round robin,
// and prints one summary line per matching battle:
//
//	(2021-01-01) <<gen8ou-1234>> annika vs. bob (annika won normally)
//
// # Basic Usage
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	summary, err := battlesearch.Search(ctx, "Annika", []string{"logs/2021-01"},
//	    battlesearch.WithWorkers(4),
//	    battlesearch.WithWinsOnly(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("searched %d files\n", summary.Files())
//
// To evaluate a single document:
//
//	fields, err := battlesearch.NewExtractor().Extract(data)
//	if err != nil {
//	    return err
//	}
//	report, err := battlesearch.Evaluate(fields, opts, path, "2021-01-01")
//	if err != nil {
//	    return err
//	}
//	if report != nil {
//	    fmt.Println(report)
//	}
//
// # Concurrency
//
// Every worker owns its queue and its Extractor. Tasks queued to one worker
// are processed in order; lines from different workers may interleave in any
// order, but each line is written atomically. Pool.Shutdown queues one
// termination signal behind the pending work of every worker and waits for
// all of them, so no dispatched file is dropped.
package battlesearch
