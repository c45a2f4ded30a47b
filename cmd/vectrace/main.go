// Command vectrace prints how a vector's capacity evolves over a run of
// appends or front inserts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/zeebo/errs/v2"

	"github.com/histdb/simplevec/num"
	"github.com/histdb/simplevec/vector"
)

var (
	count   = flag.Int("n", 32, "number of elements to add")
	reserve = flag.Int("reserve", 0, "capacity to reserve up front")
	front   = flag.Bool("front", false, "insert at the front instead of appending")
	digest  = flag.Bool("digest", false, "print the xxh3 digest of the result")
)

func main() {
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		log.Fatalf("%+v", errs.Wrap(err))
	}
}

func run(out io.Writer) error {
	if *count < 0 || *reserve < 0 {
		return errs.Errorf("negative count or reserve: n=%d reserve=%d", *count, *reserve)
	}

	v := vector.WithCapacity[num.U64](vector.Reserve(*reserve))
	fmt.Fprintf(out, "start len=%d cap=%d\n", v.Len(), v.Cap())

	for i := 0; i < *count; i++ {
		before := v.Cap()
		if *front {
			v.Insert(v.Begin(), num.U64(i))
		} else {
			v.PushBack(num.U64(i))
		}
		if v.Cap() != before {
			fmt.Fprintf(out, "add=%-6d len=%-6d cap=%-6d reallocs=%d bytes=%d\n",
				i, v.Len(), v.Cap(), v.Reallocs(), v.Size())
		}
	}

	fmt.Fprintf(out, "done  len=%d cap=%d reallocs=%d\n", v.Len(), v.Cap(), v.Reallocs())
	if *digest {
		fmt.Fprintf(out, "digest %016x\n", vector.Digest(v))
	}
	return nil
}
