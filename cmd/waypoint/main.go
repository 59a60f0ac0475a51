// Command waypoint validates, describes and previews tour files.
package main

func main() {
	Execute()
}
