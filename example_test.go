package logcat_test

import (
	"fmt"

	"github.com/amirhossein-jamali/logcat"
)

func printLine(priority logcat.Priority, tag, msg string) int {
	n, _ := fmt.Printf("%s/%s: %s\n", priority.Letter(), tag, msg)
	return n
}

func Example() {
	logcat.SetDefault(logcat.New(logcat.Options{LineLogger: logcat.LineLoggerFunc(printLine)}))
	defer logcat.SetDefault(nil)

	_ = logcat.InitVerbose("  xLogLib ", false)
	n, _ := logcat.DebugTag("Comp", "hi")
	fmt.Println(n == logcat.Denied)

	_ = logcat.InitVerbose("xLogLib", true)
	_, _ = logcat.DebugTag("Comp", "hi")
	_, _ = logcat.Warnf("Net", "%d retries left", 2)
	// Output:
	// true
	// D/xLogLib: LogCat: Init with app tag - xLogLib
	// D/xLogLib: Comp: hi
	// W/xLogLib: Net: 2 retries left
}

func ExampleSimpleNumberObfuscator() {
	f := logcat.New(logcat.Options{LineLogger: logcat.LineLoggerFunc(printLine)})
	_ = f.Init("xLogLib")
	f.SetObfuscator(logcat.SimpleNumberObfuscator{})
	f.SetObfuscateByDefault(true)

	_, _ = f.InfoTag("Auth", "code 4711 sent")
	_, _ = f.Println(logcat.PriorityAssert, "", "pin 1234")
	// Output:
	// I/xLogLib: Auth: code **** sent
	// A/xLogLib: pin ****
}
