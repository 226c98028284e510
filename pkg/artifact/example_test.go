package artifact_test

import (
	"fmt"

	"github.com/funtime/mvnfetch/pkg/artifact"
)

func ExampleNew() {
	c, err := artifact.New("org.apache.commons:commons-lang3:3.14.0", "sources", "jar")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(c)
	fmt.Println(c.Path(c.Version))
	// Output:
	// org.apache.commons:commons-lang3:jar:sources:3.14.0
	// org/apache/commons/commons-lang3/3.14.0/commons-lang3-3.14.0-sources.jar
}

func ExampleParseGAV() {
	g, a, v, _ := artifact.ParseGAV("g:a:b:v")
	fmt.Printf("group=%s artifact=%s version=%s\n", g, a, v)
	// Output:
	// group=g artifact=a:b version=v
}
