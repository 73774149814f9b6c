package main

// address is the listen address used by the development server.
const address = ":8000"
